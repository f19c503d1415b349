package sqlstore

import (
	"context"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// TenantStats reads each figure straight from its own table; appId is denormalised onto
// activities and summaries so none of the queries joins users.
func (repo *statsRepository) TenantStats(ctx context.Context, query repository.StatsQuery) (*entity.TenantStats, error) {
	scoped := func(m any) *gorm.DB {
		db := repo.db.WithContext(ctx).Model(m)
		if query.AppID != "" {
			db = db.Where("app_id = ?", query.AppID)
		}

		return db
	}

	stats := &entity.TenantStats{AppID: query.AppID}

	if err := scoped(&model.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	err := scoped(&model.ActivityModel{}).
		Where("activity_type IN ? AND timestamp >= ?",
			[]string{entity.ActivityLogin.String(), entity.ActivityRegister.String()}, utc(query.Since)).
		Distinct("user_id").
		Count(&stats.ActiveToday).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count active users")
	}

	err = scoped(&model.DailySummaryModel{}).
		Where("date = ?", query.Date).
		Select("COALESCE(SUM(daily_count), 0)").
		Scan(&stats.TodayTotalCount).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to sum today's counts")
	}

	return stats, nil
}

func (repo *statsRepository) ListApps(ctx context.Context) ([]*entity.AppUsage, error) {
	var rows []struct {
		AppID     string
		UserCount int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("app_id, COUNT(*) AS user_count").
		Group("app_id").
		Order("app_id").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list apps")
	}

	apps := make([]*entity.AppUsage, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, &entity.AppUsage{AppID: row.AppID, Name: row.AppID, UserCount: row.UserCount})
	}

	return apps, nil
}
