// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/tenant"
)

// --- Input DTOs ---

// LoginInput identifies a user inside one application. An unseen (AppID, Mobile) pair registers.
type LoginInput struct {
	Name   string
	Mobile string
	AppID  string
}

// AdminLoginInput carries the administrator credentials.
type AdminLoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued token with the resolved user.
type LoginOutput struct {
	Token     string
	User      *entity.User
	IsNewUser bool
}

// AdminLoginOutput returns the issued admin token.
type AdminLoginOutput struct {
	Token    string
	Username string
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login finds or creates the user and records a REGISTER or LOGIN activity.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	AdminLogin(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)
	// Logout records a LOGOUT activity. Tokens are stateless and stay valid until expiry.
	Logout(ctx context.Context, scope tenant.Scope) error
}
