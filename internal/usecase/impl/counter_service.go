package impl

import (
	"context"
	"log/slog"
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

// counterService implements the CounterUsecase interface.
type counterService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	loc       *time.Location
	logger    *slog.Logger
}

// CounterServiceParams holds dependencies for CounterService, injected by Fx.
type CounterServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCounterService is the constructor for counterService.
func NewCounterService(params CounterServiceParams) (usecase.CounterUsecase, error) {
	loc, err := params.Config.Counter.Location()
	if err != nil {
		return nil, err
	}

	return &counterService{
		txManager: params.TxManager,
		clock:     clockOrSystem(params.Clock),
		loc:       loc,
		logger:    params.Logger,
	}, nil
}

func (srv *counterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCount runs the increment, the activity log entry and the summary upsert in that order
// inside one unit of work.
func (srv *counterService) AddCount(ctx context.Context, scope tenant.Scope, delta int64) (*usecase.AddCountOutput, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if delta < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("count must be at least 1"), "invalid count")
	}

	now := srv.clock.Now()
	today := util.DayKey(now, srv.loc)
	yesterday, err := util.PreviousDay(today)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	output := &usecase.AddCountOutput{}
	step := "increment"

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().IncrementTotal(ctx, scope, delta, now)
		if err != nil {
			return mapUserLookupError(err)
		}

		step = "activity"
		activity := &entity.Activity{
			UserID:    user.ID,
			AppID:     user.AppID,
			Kind:      entity.ActivityCountIncrement,
			Count:     delta,
			Timestamp: now,
		}
		if err := repoFactory.ActivityRepo().Log(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to log COUNT_INCREMENT activity")
		}

		step = "summary"
		summaryRepo := repoFactory.DailySummaryRepo()
		streak, err := nextStreak(ctx, summaryRepo, scope, today, yesterday)
		if err != nil {
			return err
		}
		summary, err := summaryRepo.Upsert(ctx, repository.SummaryDelta{
			UserID:        user.ID,
			AppID:         user.AppID,
			Date:          today,
			Delta:         delta,
			TotalSnapshot: user.TotalCount,
			Streak:        streak,
		})
		if err != nil {
			return errors.Wrap(err, "failed to upsert daily summary")
		}

		output.TotalCount = user.TotalCount
		output.Summary = summary

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add count",
			slog.String("userID", scope.UserID),
			slog.String("appId", scope.AppID),
			slog.String("step", step),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute add count transaction")
	}

	srv.log(ctx).Debug("Count added",
		slog.String("userID", scope.UserID),
		slog.Int64("delta", delta),
		slog.Int64("totalCount", output.TotalCount),
	)

	return output, nil
}

// nextStreak continues yesterday's streak or starts a new one. The value only takes effect
// when today's summary row is created, so once today's row exists its streak is reused and
// yesterday is not read.
func nextStreak(ctx context.Context, summaryRepo repository.DailySummaryRepository, scope tenant.Scope, today, yesterday string) (int, error) {
	current, err := summaryRepo.FindByDate(ctx, scope, today)
	if err == nil {
		return current.Streak, nil
	}
	if !errors.Is(err, repository.ErrSummaryNotFound) {
		return 0, errors.Wrap(err, "failed to read today's daily summary")
	}

	previous, err := summaryRepo.FindByDate(ctx, scope, yesterday)
	if errors.Is(err, repository.ErrSummaryNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read previous daily summary")
	}

	return previous.Streak + 1, nil
}

func (srv *counterService) MyActivities(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.Activity, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	var activities []*entity.Activity
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		activities, err = repoFactory.ActivityRepo().ListByUser(ctx, scope, page.Normalize())

		return errors.Wrap(err, "failed to list activities")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user activities")
	}

	return activities, nil
}

func (srv *counterService) DailySummaries(ctx context.Context, scope tenant.Scope, days int) ([]*entity.DailySummary, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = usecase.DefaultSummaryDays
	}

	var summaries []*entity.DailySummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		summaries, err = repoFactory.DailySummaryRepo().ListByUser(ctx, scope, repository.Page{Limit: days}.Normalize())

		return errors.Wrap(err, "failed to list daily summaries")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get daily summaries")
	}

	return summaries, nil
}
