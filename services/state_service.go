package services

import (
	"context"
	"log"
	"sync"

	"projectmatch_server/models"
)

// StateService owns the one mutable AppState. Every read and every write goes
// through the same exclusive lock, so each operation observes and produces a
// consistent snapshot. Nothing blocks while the lock is held: allocation is
// in-memory and bounded by roster size, and the snapshot save is a single
// synchronous call.
type StateService struct {
	mu    sync.Mutex
	state *models.AppState
	Store SnapshotStore
}

// NewStateService loads the persisted snapshot through store, starting from
// an empty state when none can be read.
func NewStateService(store SnapshotStore) *StateService {
	state, err := store.Load(context.Background())
	if err != nil {
		log.Printf("No usable state snapshot, starting fresh: %v", err)
		state = models.NewAppState()
	}
	if state.Sessions == nil {
		state.Sessions = map[string]models.Session{}
	}
	return &StateService{state: state, Store: store}
}

// View runs fn with shared access to the state. fn must not retain the
// pointer past its return.
func (ss *StateService) View(fn func(s *models.AppState)) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	fn(ss.state)
}

// Update runs fn with exclusive access to the state. When fn reports that it
// mutated something, the snapshot is saved before the lock is released. A
// failed save is logged and otherwise ignored: the in-memory mutation stands,
// and losing it is only possible if the process dies before a later save
// succeeds.
func (ss *StateService) Update(fn func(s *models.AppState) bool) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	mutated := fn(ss.state)
	if mutated {
		if err := ss.Store.Save(context.Background(), ss.state); err != nil {
			log.Printf("Failed to persist state snapshot: %v", err)
		}
	}
	return mutated
}
