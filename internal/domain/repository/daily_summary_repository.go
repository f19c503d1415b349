package repository

import (
	"context"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
)

// ErrSummaryNotFound is returned when no summary exists for the requested day.
var ErrSummaryNotFound = errors.New("daily summary not found")

// SummaryDelta is one increment folded into a day's summary.
type SummaryDelta struct {
	UserID        string
	AppID         string
	Date          string // YYYY-MM-DD
	Delta         int64
	TotalSnapshot int64 // The user's running total after the increment.
	Streak        int   // Applied only when the row is created.
}

// DailySummaryRepository maintains the per-user, per-day rollups.
type DailySummaryRepository interface {
	// Upsert creates the (userId, date) row with dailyCount = Delta, or atomically adds Delta
	// to an existing row and overwrites its total snapshot. Concurrent deltas are never lost.
	// A (userId, date) insert race that cannot be resolved returns domain errors.ErrDailySummaryConflict.
	Upsert(ctx context.Context, delta SummaryDelta) (*entity.DailySummary, error)

	// FindByDate returns the caller's summary for date or ErrSummaryNotFound.
	FindByDate(ctx context.Context, scope tenant.Scope, date string) (*entity.DailySummary, error)

	// ListByUser pages through the caller's summaries by date.
	ListByUser(ctx context.Context, scope tenant.Scope, page Page) ([]*entity.DailySummary, error)
}
