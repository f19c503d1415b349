package mongostore

import (
	"context"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type statsRepository struct {
	db     *mongo.Database
	binder sessionBinder
}

func newStatsRepository(db *mongo.Database, binder sessionBinder) repository.StatsRepository {
	return &statsRepository{db: db, binder: binder}
}

func (repo *statsRepository) TenantStats(ctx context.Context, query repository.StatsQuery) (*entity.TenantStats, error) {
	ctx = repo.binder.bind(ctx)

	tenantFilter := func(extra ...bson.E) bson.D {
		filter := bson.D{}
		if query.AppID != "" {
			filter = append(filter, bson.E{Key: "appId", Value: query.AppID})
		}

		return append(filter, extra...)
	}

	stats := &entity.TenantStats{AppID: query.AppID}

	totalUsers, err := repo.db.Collection(usersCollection).CountDocuments(ctx, tenantFilter())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}
	stats.TotalUsers = totalUsers

	active, err := repo.db.Collection(activitiesCollection).Distinct(ctx, "userId", tenantFilter(
		bson.E{Key: "activityType", Value: bson.D{{Key: "$in", Value: bson.A{entity.ActivityLogin.String(), entity.ActivityRegister.String()}}}},
		bson.E{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: query.Since.UTC()}}},
	))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count active users")
	}
	stats.ActiveToday = int64(len(active))

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: tenantFilter(bson.E{Key: "date", Value: query.Date})}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$dailyCount"}}},
		}}},
	}
	cursor, err := repo.db.Collection(dailySummariesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to sum today's counts")
	}

	var sums []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &sums); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode today's counts")
	}
	if len(sums) > 0 {
		stats.TodayTotalCount = sums[0].Total
	}

	return stats, nil
}

func (repo *statsRepository) ListApps(ctx context.Context) ([]*entity.AppUsage, error) {
	ctx = repo.binder.bind(ctx)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$appId"},
			{Key: "userCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := repo.db.Collection(usersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list apps")
	}

	var rows []struct {
		AppID     string `bson:"_id"`
		UserCount int64  `bson:"userCount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode apps")
	}

	apps := make([]*entity.AppUsage, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, &entity.AppUsage{AppID: row.AppID, Name: row.AppID, UserCount: row.UserCount})
	}

	return apps, nil
}
