package sqlstore

import (
	"context"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dailySummaryRepository struct {
	db *gorm.DB
}

// NewDailySummaryRepository is the constructor for dailySummaryRepository.
func NewDailySummaryRepository(db *gorm.DB) repository.DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

// Upsert issues one INSERT ... ON CONFLICT (ON DUPLICATE KEY on MySQL) statement.
// The increment is evaluated by the database against the stored row, so concurrent
// deltas for the same day add up. Streak is only written on insert.
func (repo *dailySummaryRepository) Upsert(ctx context.Context, delta repository.SummaryDelta) (*entity.DailySummary, error) {
	uid, ok := parseID(delta.UserID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	summaryM := &model.DailySummaryModel{
		UserID:     uid,
		AppID:      delta.AppID,
		Date:       delta.Date,
		DailyCount: delta.Delta,
		TotalCount: delta.TotalSnapshot,
		Streak:     max(delta.Streak, 1),
	}

	updates := clause.Set{{
		Column: clause.Column{Name: "daily_count"},
		Value:  gorm.Expr("daily_summaries.daily_count + ?", delta.Delta),
	}}
	updates = append(updates, clause.AssignmentColumns([]string{"total_count", "updated_at"})...)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: updates,
		}).
		Create(summaryM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrDailySummaryConflict.WrapMessage("user " + delta.UserID + " on " + delta.Date)
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, errors.Wrap(repository.ErrUserNotFound, "summary owner")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert daily summary")
	}

	return repo.find(ctx, "failed to read daily summary", "user_id = ? AND date = ?", uid, delta.Date)
}

func (repo *dailySummaryRepository) FindByDate(ctx context.Context, scope tenant.Scope, date string) (*entity.DailySummary, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return nil, repository.ErrSummaryNotFound
	}

	return repo.find(ctx, "failed to find daily summary", "user_id = ? AND app_id = ? AND date = ?", uid, scope.AppID, date)
}

func (repo *dailySummaryRepository) find(ctx context.Context, details string, query string, args ...any) (*entity.DailySummary, error) {
	var summaryM model.DailySummaryModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&summaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toSummaryDomain(&summaryM), nil
}

func (repo *dailySummaryRepository) ListByUser(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.DailySummary, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return []*entity.DailySummary{}, nil
	}
	page = page.Normalize()

	var summaryMs []*model.DailySummaryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND app_id = ?", uid, scope.AppID).
		Order(orderClause("date", page.Order)).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&summaryMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list daily summaries")
	}

	summaries := make([]*entity.DailySummary, 0, len(summaryMs))
	for _, summaryM := range summaryMs {
		summaries = append(summaries, toSummaryDomain(summaryM))
	}

	return summaries, nil
}
