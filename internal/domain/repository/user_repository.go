// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ProfileChanges lists the fields a profile update may set. Nil fields are left as they are.
type ProfileChanges struct {
	Name    *string
	Email   *string
	Mobile  *string
	PinHash *string
}

// IsEmpty reports whether no field is set.
func (c ProfileChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.Mobile == nil && c.PinHash == nil
}

// UserFilter narrows the admin user listing. An empty AppID spans every tenant.
type UserFilter struct {
	AppID  string
	Search string // Case-insensitive substring of name or email.
	Page   Page
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a user by id in any tenant. Only admin paths use it.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindInScope retrieves the caller's own user, matching both id and app.
	FindInScope(ctx context.Context, scope tenant.Scope) (*entity.User, error)

	// FindByMobileAndApp looks up the user owning mobile inside appID.
	FindByMobileAndApp(ctx context.Context, mobile, appID string) (*entity.User, error)

	// Create persists user and fills in its generated ID and timestamps.
	// A duplicate (appId, mobile) returns domain errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// IncrementTotal atomically adds delta to the running total, stamps the last active time
	// and returns the updated user.
	IncrementTotal(ctx context.Context, scope tenant.Scope, delta int64, at time.Time) (*entity.User, error)

	// UpdateProfile applies changes and returns the updated user.
	UpdateProfile(ctx context.Context, scope tenant.Scope, changes ProfileChanges) (*entity.User, error)

	// List returns users ordered by last activity, most recent first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
