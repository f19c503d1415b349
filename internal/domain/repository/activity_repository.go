package repository

import (
	"context"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/tenant"
)

// ActivityFilter narrows the admin activity listing. Empty fields are ignored.
type ActivityFilter struct {
	AppID  string
	UserID string
	Kind   entity.ActivityKind
	Page   Page
}

// ActivityRepository is the append-only activity log.
type ActivityRepository interface {
	// Log appends activity and fills in its ID. Timestamp defaults to now when zero.
	Log(ctx context.Context, activity *entity.Activity) error

	// ListByUser pages through the caller's own activities by timestamp.
	ListByUser(ctx context.Context, scope tenant.Scope, page Page) ([]*entity.Activity, error)

	// List pages through activities across users with the owner's name and email attached.
	List(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, error)
}
