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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type activityRepository struct {
	coll   *mongo.Collection
	users  *mongo.Collection
	binder sessionBinder
}

func newActivityRepository(db *mongo.Database, binder sessionBinder) repository.ActivityRepository {
	return &activityRepository{
		coll:   db.Collection(activitiesCollection),
		users:  db.Collection(usersCollection),
		binder: binder,
	}
}

// Log appends one activity. There are no foreign keys, so the owner is checked first.
func (repo *activityRepository) Log(ctx context.Context, activity *entity.Activity) error {
	if !activity.Kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown activity type " + activity.Kind.String())
	}
	uid, ok := parseObjectID(activity.UserID)
	if !ok {
		return repository.ErrUserNotFound
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	ctx = repo.binder.bind(ctx)
	if err := ensureUserExists(ctx, repo.users, uid); err != nil {
		return errors.Wrap(err, "activity owner")
	}

	doc := &activityDocument{
		ID:           primitive.NewObjectID(),
		UserID:       uid,
		AppID:        activity.AppID,
		ActivityType: activity.Kind.String(),
		Count:        activity.Count,
		Metadata:     bson.M(activity.Metadata),
		Timestamp:    activity.Timestamp.UTC(),
	}
	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if isValidationFailure(err) {
			return domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to log activity")
	}

	activity.ID = doc.ID.Hex()

	return nil
}

func (repo *activityRepository) ListByUser(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.Activity, error) {
	filter, ok := scopeFilter(scope, "userId")
	if !ok {
		return []*entity.Activity{}, nil
	}

	return repo.aggregate(ctx, activityPipeline(filter, page.Normalize(), false))
}

// List spans tenants unless the filter names one and joins the owner's name and email.
func (repo *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	match := bson.D{}
	if filter.AppID != "" {
		match = append(match, bson.E{Key: "appId", Value: filter.AppID})
	}
	if filter.Kind != "" {
		match = append(match, bson.E{Key: "activityType", Value: filter.Kind.String()})
	}
	if filter.UserID != "" {
		uid, ok := parseObjectID(filter.UserID)
		if !ok {
			return []*entity.Activity{}, nil
		}
		match = append(match, bson.E{Key: "userId", Value: uid})
	}

	return repo.aggregate(ctx, activityPipeline(match, filter.Page.Normalize(), true))
}

func (repo *activityRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.Activity, error) {
	ctx = repo.binder.bind(ctx)

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list activities")
	}

	var docs []*activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode activities")
	}

	activities := make([]*entity.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, doc.toDomain())
	}

	return activities, nil
}

// activityPipeline pages by timestamp then _id. withOwner joins the user document without its pin.
func activityPipeline(match bson.D, page repository.Page, withOwner bool) mongo.Pipeline {
	direction := sortDirection(page.Order)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "timestamp", Value: direction}, {Key: "_id", Value: direction}}}},
		{{Key: "$skip", Value: int64(page.Offset)}},
		{{Key: "$limit", Value: int64(page.Limit)}},
	}
	if !withOwner {
		return pipeline
	}

	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "user.pin", Value: 0}}}},
	)
}

func ensureUserExists(ctx context.Context, users *mongo.Collection, uid primitive.ObjectID) error {
	n, err := users.CountDocuments(ctx, bson.D{{Key: "_id", Value: uid}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check user")
	}
	if n == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
