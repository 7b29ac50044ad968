package dto

import "time"

// LoginRequest carries username and password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PermissionsResponse tells the client what the current user may do.
type PermissionsResponse struct {
	UserID  string `json:"userID"`
	IsAdmin bool   `json:"isAdmin"`
}
