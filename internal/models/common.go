package models

import "time"

// AuditFields holds standard timestamp columns shared by all tables.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
