package models

// GroupPreferences is a group's ranked project wishlist, rank 1 first.
// Updates replace the whole list; omitted projects lose their rank.
type GroupPreferences struct {
	GroupEmail       string   `dynamodbav:"groupEmail" json:"group_email"`
	ProjectIDsRanked []string `dynamodbav:"projectIdsRanked" json:"project_ids_ranked"`
}

// ProjectPreferences is a project's ranked list of candidate groups, set by
// the owning company. Same replace-wholesale semantics as group preferences.
type ProjectPreferences struct {
	ProjectID         string   `dynamodbav:"projectId" json:"project_id"`
	GroupEmailsRanked []string `dynamodbav:"groupEmailsRanked" json:"group_emails_ranked"`
}
