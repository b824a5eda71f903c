package models

// Match statuses as seen by one party in a round.
const (
	MatchStatusPending         = "pending"
	MatchStatusAcceptedByMe    = "accepted_by_me"
	MatchStatusAcceptedByOther = "accepted_by_other"
	MatchStatusFinal           = "final"
)

// Decision actions.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// MatchResult is one allocator-proposed pairing. It is recomputed on demand
// and never persisted; only finalized results are stored.
type MatchResult struct {
	GroupEmail   string `dynamodbav:"groupEmail" json:"group_email"`
	ProjectID    string `dynamodbav:"projectId" json:"project_id"`
	ProjectName  string `dynamodbav:"projectName" json:"project_name"`
	CompanyEmail string `dynamodbav:"companyEmail" json:"company_email"`
}

// VisibleMatch is a tentative match annotated with the caller's view of the
// current round's decision state.
type VisibleMatch struct {
	MatchResult
	Status string `json:"status"`
}

// MatchDecision records both sides' choices on one tentative pair within one
// round. The four flags are independent: acceptance only counts toward
// finalization inside its own round, while either rejection flag also feeds
// the permanent rejected-pair set.
type MatchDecision struct {
	RoundNumber       int    `dynamodbav:"roundNumber" json:"round_number"`
	CompanyEmail      string `dynamodbav:"companyEmail" json:"company_email"`
	GroupEmail        string `dynamodbav:"groupEmail" json:"group_email"`
	ProjectID         string `dynamodbav:"projectId" json:"project_id"`
	AcceptedByCompany bool   `dynamodbav:"acceptedByCompany" json:"accepted_by_company"`
	AcceptedByGroup   bool   `dynamodbav:"acceptedByGroup" json:"accepted_by_group"`
	RejectedByCompany bool   `dynamodbav:"rejectedByCompany" json:"rejected_by_company"`
	RejectedByGroup   bool   `dynamodbav:"rejectedByGroup" json:"rejected_by_group"`
}

// RejectedPair bars a (group, project) combination from ever being shown or
// decided again. Membership survives round transitions.
type RejectedPair struct {
	GroupEmail string `dynamodbav:"groupEmail" json:"group_email"`
	ProjectID  string `dynamodbav:"projectId" json:"project_id"`
}

// RoundStatus reports the negotiation window state.
type RoundStatus struct {
	RoundNumber int  `json:"round_number"`
	RoundOpen   bool `json:"round_open"`
}
