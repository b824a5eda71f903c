package models

// AppState is the single persisted snapshot of the whole system. Tentative
// matches are deliberately absent: they are recomputed from the roster and
// preference lists on every read.
type AppState struct {
	Users           []AuthUser           `dynamodbav:"users" json:"users"`
	Groups          []Group              `dynamodbav:"groups" json:"groups"`
	Companies       []Company            `dynamodbav:"companies" json:"companies"`
	Projects        []Project            `dynamodbav:"projects" json:"projects"`
	GroupPrefs      []GroupPreferences   `dynamodbav:"groupPrefs" json:"group_prefs"`
	ProjectPrefs    []ProjectPreferences `dynamodbav:"projectPrefs" json:"project_prefs"`
	Sessions        map[string]Session   `dynamodbav:"sessions" json:"sessions"`
	RoundNumber     int                  `dynamodbav:"roundNumber" json:"round_number"`
	RoundOpen       bool                 `dynamodbav:"roundOpen" json:"round_open"`
	AcceptedMatches []MatchResult        `dynamodbav:"acceptedMatches" json:"accepted_matches"`
	RejectedPairs   []RejectedPair       `dynamodbav:"rejectedPairs" json:"rejected_pairs"`
	MatchDecisions  []MatchDecision      `dynamodbav:"matchDecisions" json:"match_decisions"`
}

// NewAppState returns an empty state with all collections initialized.
func NewAppState() *AppState {
	return &AppState{
		Users:           []AuthUser{},
		Groups:          []Group{},
		Companies:       []Company{},
		Projects:        []Project{},
		GroupPrefs:      []GroupPreferences{},
		ProjectPrefs:    []ProjectPreferences{},
		Sessions:        map[string]Session{},
		AcceptedMatches: []MatchResult{},
		RejectedPairs:   []RejectedPair{},
		MatchDecisions:  []MatchDecision{},
	}
}

// FindGroup returns the group registered under email, or nil.
func (s *AppState) FindGroup(email string) *Group {
	for i := range s.Groups {
		if s.Groups[i].Email == email {
			return &s.Groups[i]
		}
	}
	return nil
}

// FindCompany returns the company registered under email, or nil.
func (s *AppState) FindCompany(email string) *Company {
	for i := range s.Companies {
		if s.Companies[i].Email == email {
			return &s.Companies[i]
		}
	}
	return nil
}

// FindProject returns the project with the given id, or nil.
func (s *AppState) FindProject(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// IsRejected reports whether the pair has ever been rejected by either side.
func (s *AppState) IsRejected(groupEmail, projectID string) bool {
	for _, p := range s.RejectedPairs {
		if p.GroupEmail == groupEmail && p.ProjectID == projectID {
			return true
		}
	}
	return false
}

// AddRejected records the pair as permanently barred. Duplicates are dropped.
func (s *AppState) AddRejected(groupEmail, projectID string) {
	if !s.IsRejected(groupEmail, projectID) {
		s.RejectedPairs = append(s.RejectedPairs, RejectedPair{GroupEmail: groupEmail, ProjectID: projectID})
	}
}

// HasFinalizedGroup reports whether the group already holds a finalized match.
func (s *AppState) HasFinalizedGroup(groupEmail string) bool {
	for _, m := range s.AcceptedMatches {
		if m.GroupEmail == groupEmail {
			return true
		}
	}
	return false
}

// HasFinalizedProject reports whether any finalized match references the
// project, which settles it for all remaining candidates.
func (s *AppState) HasFinalizedProject(projectID string) bool {
	for _, m := range s.AcceptedMatches {
		if m.ProjectID == projectID {
			return true
		}
	}
	return false
}

// HasFinalizedPair reports whether this exact pairing is already finalized.
func (s *AppState) HasFinalizedPair(groupEmail, projectID string) bool {
	for _, m := range s.AcceptedMatches {
		if m.GroupEmail == groupEmail && m.ProjectID == projectID {
			return true
		}
	}
	return false
}

// FindDecision returns the decision record for the tuple, or nil.
func (s *AppState) FindDecision(round int, companyEmail, groupEmail, projectID string) *MatchDecision {
	for i := range s.MatchDecisions {
		d := &s.MatchDecisions[i]
		if d.RoundNumber == round && d.CompanyEmail == companyEmail &&
			d.GroupEmail == groupEmail && d.ProjectID == projectID {
			return d
		}
	}
	return nil
}

// EnsureDecision returns the decision record for the tuple, creating it with
// all flags cleared on first use within the round.
func (s *AppState) EnsureDecision(round int, companyEmail, groupEmail, projectID string) *MatchDecision {
	if d := s.FindDecision(round, companyEmail, groupEmail, projectID); d != nil {
		return d
	}
	s.MatchDecisions = append(s.MatchDecisions, MatchDecision{
		RoundNumber:  round,
		CompanyEmail: companyEmail,
		GroupEmail:   groupEmail,
		ProjectID:    projectID,
	})
	return &s.MatchDecisions[len(s.MatchDecisions)-1]
}
