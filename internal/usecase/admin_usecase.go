package usecase

import (
	"context"

	"counterhub/internal/domain/entity"
)

const (
	// AdminUserActivityLimit bounds the activities returned with a user's detail.
	AdminUserActivityLimit = 100
	// AdminUserSummaryLimit bounds the daily summaries returned with a user's detail.
	AdminUserSummaryLimit = 30
	// DefaultAdminActivityLimit applies to the admin activity listing when no limit is given.
	DefaultAdminActivityLimit = 100
)

// ListUsersInput filters the cross-tenant user listing. Page is 1-based.
type ListUsersInput struct {
	AppID  string
	Search string
	Page   int
	Limit  int
}

// ListActivitiesInput filters the cross-tenant activity listing. Page is 1-based.
type ListActivitiesInput struct {
	AppID  string
	UserID string
	Kind   string
	Page   int
	Limit  int
}

// UserDetail is one user with its recent history.
type UserDetail struct {
	User       *entity.User
	Activities []*entity.Activity
	Summaries  []*entity.DailySummary
}

// AdminUsecase defines the administrative operations. These are the only ones that cross tenants.
type AdminUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)
	GetUserDetail(ctx context.Context, userID string) (*UserDetail, error)
	ListActivities(ctx context.Context, input *ListActivitiesInput) ([]*entity.Activity, error)
	// Stats aggregates one tenant, or every tenant when appID is empty.
	Stats(ctx context.Context, appID string) (*entity.TenantStats, error)
	ListApps(ctx context.Context) ([]*entity.AppUsage, error)
}
