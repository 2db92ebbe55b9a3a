package model

import (
	"time"

	"github.com/google/uuid"
)

// Associate represents an employee account in the directory.
type Associate struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Designation  string    `json:"designation,omitempty"`
	Picture      string    `json:"picture,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity projects the associate into the canonical identity payload.
func (a *Associate) Identity() Identity {
	return Identity{
		AssociateID: a.ID.String(),
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role,
		Designation: a.Designation,
		Picture:     a.Picture,
	}
}

// LoginRequest is the payload for password authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// GoogleLoginRequest is the payload for the Google sign-in exchange.
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// LoginResponse is returned after a successful credential exchange.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}

// AuthConfigResponse is the public auth configuration for sign-in clients.
type AuthConfigResponse struct {
	GoogleClientID string `json:"google_client_id"`
}

// CreateAssociateRequest is the payload for creating a directory entry.
type CreateAssociateRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	Name        string `json:"name" binding:"required,max=255"`
	Password    string `json:"password" binding:"omitempty,min=6,max=128"`
	Role        Role   `json:"role" binding:"required"`
	Designation string `json:"designation" binding:"max=255"`
}
