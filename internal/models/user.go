package models

// UserRole mirrors domain.UserRole at the storage layer.
type UserRole string

const (
	RoleUser   UserRole = "USER"
	RoleSystem UserRole = "SYSTEM"
)

// User is the database representation of a user.
type User struct {
	UserID   string   `json:"userID" db:"user_id"`
	Username string   `json:"username" db:"username"`
	Role     UserRole `json:"role" db:"role"`
	AuditFields
}
