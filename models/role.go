package models

// Role identifies which side of the marketplace an account acts for.
type Role string

const (
	RoleGroup   Role = "group"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// AuthUser is a login credential record for any role.
type AuthUser struct {
	Email    string `dynamodbav:"email" json:"email"`
	Password string `dynamodbav:"password" json:"password"`
	Role     Role   `dynamodbav:"role" json:"role"`
}

// Session maps an issued session id back to an identity and role.
type Session struct {
	Email string `dynamodbav:"email" json:"email"`
	Role  Role   `dynamodbav:"role" json:"role"`
}
