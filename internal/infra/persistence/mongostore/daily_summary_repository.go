package mongostore

import (
	"context"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type dailySummaryRepository struct {
	coll   *mongo.Collection
	users  *mongo.Collection
	binder sessionBinder
}

func newDailySummaryRepository(db *mongo.Database, binder sessionBinder) repository.DailySummaryRepository {
	return &dailySummaryRepository{
		coll:   db.Collection(dailySummariesCollection),
		users:  db.Collection(usersCollection),
		binder: binder,
	}
}

// Upsert relies on the unique (userId, date) index. Two first increments of a day may both
// attempt the insert; outside a transaction the loser's retry lands on the update path. Inside
// a transaction the server has already aborted it, so the conflict is returned for the
// transaction manager to surface.
func (repo *dailySummaryRepository) Upsert(ctx context.Context, delta repository.SummaryDelta) (*entity.DailySummary, error) {
	uid, ok := parseObjectID(delta.UserID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	ctx = repo.binder.bind(ctx)
	if err := ensureUserExists(ctx, repo.users, uid); err != nil {
		return nil, errors.Wrap(err, "summary owner")
	}

	filter := bson.D{{Key: "userId", Value: uid}, {Key: "date", Value: delta.Date}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var (
		doc dailySummaryDocument
		err error
	)
	for range upsertAttempts(repo.binder) {
		err = repo.coll.FindOneAndUpdate(ctx, filter, summaryUpdate(delta, time.Now().UTC()), opts).Decode(&doc)
		if err == nil || !isDuplicateKey(err) {
			break
		}
	}
	if err != nil {
		if isDuplicateKey(err) {
			return nil, domainerrors.ErrDailySummaryConflict.WrapMessage("user " + delta.UserID + " on " + delta.Date)
		}
		if isValidationFailure(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert daily summary")
	}

	return doc.toDomain(), nil
}

func upsertAttempts(binder sessionBinder) int {
	if binder.inTransaction() {
		return 1
	}

	return 2
}

// summaryUpdate increments the day's count. The total snapshot only moves forward so a
// slower concurrent writer cannot roll it back. Streak and appId are set on insert only.
func summaryUpdate(delta repository.SummaryDelta, now time.Time) bson.D {
	return bson.D{
		{Key: "$inc", Value: bson.D{{Key: "dailyCount", Value: delta.Delta}}},
		{Key: "$max", Value: bson.D{{Key: "totalCount", Value: delta.TotalSnapshot}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "appId", Value: delta.AppID},
			{Key: "streak", Value: max(delta.Streak, 1)},
			{Key: "createdAt", Value: now},
		}},
	}
}

func (repo *dailySummaryRepository) FindByDate(ctx context.Context, scope tenant.Scope, date string) (*entity.DailySummary, error) {
	filter, ok := scopeFilter(scope, "userId")
	if !ok {
		return nil, repository.ErrSummaryNotFound
	}
	filter = append(filter, bson.E{Key: "date", Value: date})

	var doc dailySummaryDocument
	if err := repo.coll.FindOne(repo.binder.bind(ctx), filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find daily summary")
	}

	return doc.toDomain(), nil
}

func (repo *dailySummaryRepository) ListByUser(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.DailySummary, error) {
	filter, ok := scopeFilter(scope, "userId")
	if !ok {
		return []*entity.DailySummary{}, nil
	}
	page = page.Normalize()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: sortDirection(page.Order)}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	ctx = repo.binder.bind(ctx)
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list daily summaries")
	}

	var docs []*dailySummaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode daily summaries")
	}

	summaries := make([]*entity.DailySummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, doc.toDomain())
	}

	return summaries, nil
}
