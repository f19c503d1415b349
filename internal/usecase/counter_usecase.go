package usecase

import (
	"context"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
)

// DefaultSummaryDays is how many daily summaries a caller gets when it asks for none.
const DefaultSummaryDays = 7

// AddCountOutput reports the state after one increment.
type AddCountOutput struct {
	TotalCount int64
	Summary    *entity.DailySummary
}

// CounterUsecase defines the consumer counter operations. Every call is bound to the caller's scope.
type CounterUsecase interface {
	// AddCount advances the running total, logs the increment and folds it into today's summary.
	AddCount(ctx context.Context, scope tenant.Scope, delta int64) (*AddCountOutput, error)
	MyActivities(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.Activity, error)
	// DailySummaries returns the most recent days, newest first.
	DailySummaries(ctx context.Context, scope tenant.Scope, days int) ([]*entity.DailySummary, error)
}
