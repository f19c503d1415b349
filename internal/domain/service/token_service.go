package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
// A user token carries the tenant pair; an admin token carries the admin username instead.
type Claims struct {
	UserID   string `json:"userId,omitempty"`
	AppID    string `json:"appId,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateUserToken issues a token bound to one user inside one application.
	GenerateUserToken(userID, appID, name string) (string, error)

	// GenerateAdminToken issues a token for the administrative surface.
	GenerateAdminToken(username string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
