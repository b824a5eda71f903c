package models

// Project is owned by exactly one company. CompanyEmail is immutable after
// creation. Capacity is always at least 1; a zero capacity supplied at
// creation is normalized before the project can receive any proposal.
type Project struct {
	ID           string `dynamodbav:"id" json:"id"`
	CompanyEmail string `dynamodbav:"companyEmail" json:"company_email"`
	Name         string `dynamodbav:"name" json:"name"`
	Description  string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Capacity     int    `dynamodbav:"capacity" json:"capacity"`
	Active       bool   `dynamodbav:"active" json:"active"`
}
