package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"counterhub/config"
	deliverycontext "counterhub/internal/delivery/context"
	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/service"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
	"counterhub/internal/usecase"
	"counterhub/internal/util"

	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	loc       *time.Location
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) (usecase.AdminUsecase, error) {
	loc, err := params.Config.Counter.Location()
	if err != nil {
		return nil, err
	}

	return &adminService{
		txManager: params.TxManager,
		clock:     clockOrSystem(params.Clock),
		loc:       loc,
		logger:    params.Logger,
	}, nil
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeAppFilter(raw string) (string, error) {
	appID, err := tenant.NormalizeFilter(raw)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid appId filter")
	}

	return appID, nil
}

func (srv *adminService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	appID, err := normalizeAppFilter(input.AppID)
	if err != nil {
		return nil, err
	}

	filter := repository.UserFilter{
		AppID:  appID,
		Search: strings.TrimSpace(input.Search),
		Page:   repository.PageFromNumber(input.Page, input.Limit),
	}

	var users []*entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		users, err = repoFactory.UserRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list users")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.String("appId", appID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute list users")
	}

	return users, nil
}

// GetUserDetail returns the user with its most recent activities and summaries.
func (srv *adminService) GetUserDetail(ctx context.Context, userID string) (*usecase.UserDetail, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("userId is required"), "invalid user id")
	}

	detail := &usecase.UserDetail{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		scope := tenant.Scope{UserID: user.ID, AppID: user.AppID}

		activities, err := repoFactory.ActivityRepo().ListByUser(ctx, scope,
			repository.Page{Limit: usecase.AdminUserActivityLimit}.Normalize())
		if err != nil {
			return errors.Wrap(err, "failed to list user activities")
		}

		summaries, err := repoFactory.DailySummaryRepo().ListByUser(ctx, scope,
			repository.Page{Limit: usecase.AdminUserSummaryLimit}.Normalize())
		if err != nil {
			return errors.Wrap(err, "failed to list user summaries")
		}

		detail.User = user
		detail.Activities = activities
		detail.Summaries = summaries

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user detail")
	}

	return detail, nil
}

func (srv *adminService) ListActivities(ctx context.Context, input *usecase.ListActivitiesInput) ([]*entity.Activity, error) {
	appID, err := normalizeAppFilter(input.AppID)
	if err != nil {
		return nil, err
	}

	kind := entity.ActivityKind(strings.TrimSpace(input.Kind))
	if kind != "" && !kind.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown activity type "+string(kind)), "invalid activity filter")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = usecase.DefaultAdminActivityLimit
	}

	filter := repository.ActivityFilter{
		AppID:  appID,
		UserID: strings.TrimSpace(input.UserID),
		Kind:   kind,
		Page:   repository.PageFromNumber(input.Page, limit),
	}

	var activities []*entity.Activity
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		activities, err = repoFactory.ActivityRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list activities")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list activities", slog.String("appId", appID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute list activities")
	}

	return activities, nil
}

// Stats counts against the current calendar day in the counter timezone.
func (srv *adminService) Stats(ctx context.Context, appID string) (*entity.TenantStats, error) {
	appID, err := normalizeAppFilter(appID)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	query := repository.StatsQuery{
		AppID: appID,
		Since: util.StartOfDay(now, srv.loc),
		Date:  util.DayKey(now, srv.loc),
	}

	var stats *entity.TenantStats
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		stats, err = repoFactory.StatsRepo().TenantStats(ctx, query)

		return errors.Wrap(err, "failed to aggregate tenant stats")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stats")
	}

	return stats, nil
}

func (srv *adminService) ListApps(ctx context.Context) ([]*entity.AppUsage, error) {
	var apps []*entity.AppUsage
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		apps, err = repoFactory.StatsRepo().ListApps(ctx)

		return errors.Wrap(err, "failed to list apps")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get apps")
	}

	return apps, nil
}
