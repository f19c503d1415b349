package usecase

import (
	"context"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/tenant"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, scope tenant.Scope) (*entity.User, error)
	UpdateProfile(ctx context.Context, scope tenant.Scope, input *UpdateProfileInput) (*entity.User, error)
}

// UpdateProfileInput lists the fields a user may change. Nil fields are left alone.
// An empty Email clears it; Pin is hashed before it is stored.
type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Mobile *string
	Pin    *string
}
