package models

import "time"

// User represents the authenticated platform user
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Role constants
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleSeller  = "SELLER"
	RoleBuyer   = "BUYER"
)

// TokenPair is issued by the auth endpoints
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest is the outgoing login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the user and token pair returned on login
type LoginResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// RegisterRequest is the outgoing registration payload
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

// OTPRequest verifies or re-requests a one-time code
type OTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code,omitempty"`
}

// PasswordResetConfirm carries the new password for a verified reset
type PasswordResetConfirm struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}
