package repository

import (
	"context"
	"time"

	"counterhub/internal/domain/entity"
)

// StatsQuery selects the tenant and the day an aggregate is computed for.
type StatsQuery struct {
	AppID string    // Empty spans every tenant.
	Since time.Time // Start of the current day; logins at or after it count as active.
	Date  string    // Current day as YYYY-MM-DD, matched against daily summaries.
}

// StatsRepository answers the admin aggregate queries.
type StatsRepository interface {
	TenantStats(ctx context.Context, query StatsQuery) (*entity.TenantStats, error)

	// ListApps returns each distinct appId with its user count, ordered by appId.
	ListApps(ctx context.Context) ([]*entity.AppUsage, error)
}
