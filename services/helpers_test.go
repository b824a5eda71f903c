package services

import (
	"path/filepath"
	"testing"

	"projectmatch_server/models"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over a file snapshot store in a
// temporary directory.
type testEnv struct {
	State       *StateService
	Users       *UserService
	Projects    *ProjectService
	Negotiation *NegotiationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := &FileSnapshotStore{Path: filepath.Join(t.TempDir(), "state.json")}
	state := NewStateService(store)
	return &testEnv{
		State:       state,
		Users:       &UserService{State: state},
		Projects:    &ProjectService{State: state},
		Negotiation: &NegotiationService{State: state},
	}
}

// twoGroupFixture registers two groups and one company with two projects:
//
//	Backend ranks [g1, g2], wanted by g1 (only) and g2 (first choice)
//	Frontend ranks [g2], wanted by g2 (second choice)
//
// The proposal loop settles on g1->Backend, g2->Frontend.
type twoGroupFixture struct {
	*testEnv
	Backend  models.Project
	Frontend models.Project
}

const (
	g1Email      = "alpha@groups.test"
	g2Email      = "beta@groups.test"
	companyEmail = "owner@acme.test"
)

func newTwoGroupFixture(t *testing.T) *twoGroupFixture {
	t.Helper()
	env := newTestEnv(t)

	ok, _ := env.Users.RegisterGroup("Alpha", g1Email, "pw")
	require.True(t, ok)
	ok, _ = env.Users.RegisterGroup("Beta", g2Email, "pw")
	require.True(t, ok)
	ok, _ = env.Users.RegisterCompany("Acme", companyEmail, "pw")
	require.True(t, ok)

	backend, created := env.Projects.AddProject(companyEmail, "Backend", "", 1)
	require.True(t, created)
	frontend, created := env.Projects.AddProject(companyEmail, "Frontend", "", 1)
	require.True(t, created)

	require.True(t, env.Projects.SetGroupPreferences(g1Email, []string{backend.ID}))
	require.True(t, env.Projects.SetGroupPreferences(g2Email, []string{backend.ID, frontend.ID}))
	require.True(t, env.Projects.SetProjectPreferences(companyEmail, backend.ID, []string{g1Email, g2Email}))
	require.True(t, env.Projects.SetProjectPreferences(companyEmail, frontend.ID, []string{g2Email}))

	return &twoGroupFixture{testEnv: env, Backend: backend, Frontend: frontend}
}
