package models

// Group is a party seeking a project assignment. Identity is the email,
// which is unique and never changes after registration.
type Group struct {
	Name  string `dynamodbav:"name" json:"name"`
	Email string `dynamodbav:"email" json:"email"`
}

// Company offers one or more projects, each with its own ranking of groups.
type Company struct {
	Name  string `dynamodbav:"name" json:"name"`
	Email string `dynamodbav:"email" json:"email"`
}
