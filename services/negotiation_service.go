package services

import (
	"log"
	"sort"

	"projectmatch_server/models"
)

// EventNotifier receives negotiation milestones for live fan-out. All methods
// are called outside the state lock.
type EventNotifier interface {
	RoundStarted(round int)
	RoundClosed(round int)
	MatchFinalized(match models.MatchResult)
}

// NegotiationService runs the accept/reject protocol on top of the allocator:
// recomputed tentative matches are filtered against the ledger, parties
// decide on what they can see, and a pair both sides accept within the same
// round becomes a permanent match.
type NegotiationService struct {
	State  *StateService
	Events EventNotifier
}

// ComputeMatches returns the full unfiltered tentative assignment.
func (ns *NegotiationService) ComputeMatches() []models.MatchResult {
	var matches []models.MatchResult
	ns.State.View(func(s *models.AppState) {
		matches = Allocate(s.Groups, s.Projects, s.GroupPrefs, s.ProjectPrefs)
	})
	return matches
}

// VisibleMatchesFor returns the tentative matches the party may decide on,
// annotated with the current round's decision status.
func (ns *NegotiationService) VisibleMatchesFor(email string, role models.Role) []models.VisibleMatch {
	var visible []models.VisibleMatch
	ns.State.View(func(s *models.AppState) {
		visible = visibleMatches(s, email, role)
	})
	return visible
}

// FinalMatchesFor returns the party's finalized matches.
func (ns *NegotiationService) FinalMatchesFor(email string, role models.Role) []models.MatchResult {
	finals := []models.MatchResult{}
	ns.State.View(func(s *models.AppState) {
		for _, m := range s.AcceptedMatches {
			if (role == models.RoleGroup && m.GroupEmail == email) ||
				(role == models.RoleCompany && m.CompanyEmail == email) {
				finals = append(finals, m)
			}
		}
	})
	return finals
}

// Decide applies an accept or reject from the party onto its visible
// tentative match. For companies targetProjectID selects which of their
// projects' pairs is meant; groups have at most one pair so the target is
// ignored. Returns false when the round is closed, the action is unknown, or
// no matching visible pair exists.
func (ns *NegotiationService) Decide(email string, role models.Role, action, targetProjectID string) bool {
	if role != models.RoleGroup && role != models.RoleCompany {
		return false
	}
	if action != models.DecisionAccept && action != models.DecisionReject {
		return false
	}

	var promoted *models.MatchResult
	ok := ns.State.Update(func(s *models.AppState) bool {
		if !s.RoundOpen {
			return false
		}

		pair, found := pickPair(s, email, role, targetProjectID)
		if !found {
			return false
		}

		decision := s.EnsureDecision(s.RoundNumber, pair.CompanyEmail, pair.GroupEmail, pair.ProjectID)
		if action == models.DecisionReject {
			s.AddRejected(pair.GroupEmail, pair.ProjectID)
			if role == models.RoleCompany {
				decision.RejectedByCompany = true
			} else {
				decision.RejectedByGroup = true
			}
			return true
		}

		if role == models.RoleCompany {
			decision.AcceptedByCompany = true
		} else {
			decision.AcceptedByGroup = true
		}
		if decision.AcceptedByCompany && decision.AcceptedByGroup &&
			!s.HasFinalizedPair(pair.GroupEmail, pair.ProjectID) {
			s.AcceptedMatches = append(s.AcceptedMatches, pair.MatchResult)
			final := pair.MatchResult
			promoted = &final
		}
		return true
	})

	if ok && promoted != nil {
		log.Printf("Match finalized: group %s on project %s", promoted.GroupEmail, promoted.ProjectID)
		if ns.Events != nil {
			ns.Events.MatchFinalized(*promoted)
		}
	}
	return ok
}

// StartRound opens a new negotiation window. Starting while a round is
// already open simply moves on to the next round number.
func (ns *NegotiationService) StartRound() models.RoundStatus {
	var status models.RoundStatus
	ns.State.Update(func(s *models.AppState) bool {
		s.RoundNumber++
		s.RoundOpen = true
		status = models.RoundStatus{RoundNumber: s.RoundNumber, RoundOpen: s.RoundOpen}
		return true
	})
	log.Printf("Round %d started", status.RoundNumber)
	if ns.Events != nil {
		ns.Events.RoundStarted(status.RoundNumber)
	}
	return status
}

// CloseRound closes the current window. Closing an already closed round is a
// no-op transition to the same state.
func (ns *NegotiationService) CloseRound() models.RoundStatus {
	var status models.RoundStatus
	ns.State.Update(func(s *models.AppState) bool {
		s.RoundOpen = false
		status = models.RoundStatus{RoundNumber: s.RoundNumber, RoundOpen: s.RoundOpen}
		return true
	})
	log.Printf("Round %d closed", status.RoundNumber)
	if ns.Events != nil {
		ns.Events.RoundClosed(status.RoundNumber)
	}
	return status
}

// RoundStatus reports the current round number and whether it accepts
// decisions.
func (ns *NegotiationService) RoundStatus() models.RoundStatus {
	var status models.RoundStatus
	ns.State.View(func(s *models.AppState) {
		status = models.RoundStatus{RoundNumber: s.RoundNumber, RoundOpen: s.RoundOpen}
	})
	return status
}

// FinalizedMatches returns every finalized match.
func (ns *NegotiationService) FinalizedMatches() []models.MatchResult {
	finals := []models.MatchResult{}
	ns.State.View(func(s *models.AppState) {
		finals = append(finals, s.AcceptedMatches...)
	})
	return finals
}

// LedgerCounts reports the sizes of the permanent rejection set and the
// decision log, for the admin overview.
func (ns *NegotiationService) LedgerCounts() (rejected, decisions int) {
	ns.State.View(func(s *models.AppState) {
		rejected = len(s.RejectedPairs)
		decisions = len(s.MatchDecisions)
	})
	return rejected, decisions
}

// visibleMatches recomputes the tentative assignment and strips everything
// the party cannot act on: rejected pairs, pairs whose group or project is
// already settled, other parties' pairs, and pairs rejected in this round's
// decisions. Must be called with the state lock held.
func visibleMatches(s *models.AppState, email string, role models.Role) []models.VisibleMatch {
	visible := []models.VisibleMatch{}
	for _, m := range Allocate(s.Groups, s.Projects, s.GroupPrefs, s.ProjectPrefs) {
		if s.IsRejected(m.GroupEmail, m.ProjectID) {
			continue
		}
		if s.HasFinalizedGroup(m.GroupEmail) || s.HasFinalizedProject(m.ProjectID) {
			continue
		}
		switch role {
		case models.RoleGroup:
			if m.GroupEmail != email {
				continue
			}
		case models.RoleCompany:
			if m.CompanyEmail != email {
				continue
			}
		default:
			continue
		}

		status := models.MatchStatusPending
		if d := s.FindDecision(s.RoundNumber, m.CompanyEmail, m.GroupEmail, m.ProjectID); d != nil {
			if d.RejectedByCompany || d.RejectedByGroup {
				continue
			}
			switch {
			case d.AcceptedByCompany && d.AcceptedByGroup:
				// Both sides raced in before finalization filtered it out.
				status = models.MatchStatusFinal
			case (role == models.RoleCompany && d.AcceptedByCompany) ||
				(role == models.RoleGroup && d.AcceptedByGroup):
				status = models.MatchStatusAcceptedByMe
			case d.AcceptedByCompany || d.AcceptedByGroup:
				status = models.MatchStatusAcceptedByOther
			}
		}
		visible = append(visible, models.VisibleMatch{MatchResult: m, Status: status})
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].ProjectName < visible[j].ProjectName
	})
	return visible
}

// pickPair resolves which visible pair a decision refers to. Groups have at
// most one; companies must name the project.
func pickPair(s *models.AppState, email string, role models.Role, targetProjectID string) (models.VisibleMatch, bool) {
	candidates := visibleMatches(s, email, role)
	if role == models.RoleGroup {
		if len(candidates) == 0 {
			return models.VisibleMatch{}, false
		}
		return candidates[0], true
	}
	if targetProjectID == "" {
		return models.VisibleMatch{}, false
	}
	for _, c := range candidates {
		if c.ProjectID == targetProjectID {
			return c, true
		}
	}
	return models.VisibleMatch{}, false
}
