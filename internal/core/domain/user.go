package domain

import "time"

// User is an operator who can sign in and record documents.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
