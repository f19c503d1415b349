package mongostore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	coll   *mongo.Collection
	binder sessionBinder
}

func newUserRepository(db *mongo.Database, binder sessionBinder) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection), binder: binder}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "failed to find user by id", bson.D{{Key: "_id", Value: oid}})
}

func (repo *userRepository) FindInScope(ctx context.Context, scope tenant.Scope) (*entity.User, error) {
	filter, ok := scopeFilter(scope, "_id")
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "failed to find user in scope", filter)
}

func (repo *userRepository) FindByMobileAndApp(ctx context.Context, mobile, appID string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by mobile", bson.D{{Key: "appId", Value: appID}, {Key: "mobile", Value: mobile}})
}

func (repo *userRepository) findOne(ctx context.Context, details string, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(repo.binder.bind(ctx), filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	doc := &userDocument{
		ID:         primitive.NewObjectID(),
		Name:       normalizeName(user.Name),
		Email:      normalizeEmail(user.Email),
		Mobile:     strings.TrimSpace(user.Mobile),
		PinHash:    user.PinHash,
		AppID:      user.AppID,
		TotalCount: user.TotalCount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := repo.coll.InsertOne(repo.binder.bind(ctx), doc); err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("mobile already registered in app " + user.AppID)
		}
		if isValidationFailure(err) {
			return domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()
	user.Name = doc.Name
	user.Email = doc.Email
	user.Mobile = doc.Mobile
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// IncrementTotal applies $inc server-side and returns the post-update document.
func (repo *userRepository) IncrementTotal(ctx context.Context, scope tenant.Scope, delta int64, at time.Time) (*entity.User, error) {
	filter, ok := scopeFilter(scope, "_id")
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "totalCount", Value: delta}}},
		{Key: "$set", Value: bson.D{
			{Key: "lastActiveDate", Value: at.UTC()},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	if err := repo.coll.FindOneAndUpdate(repo.binder.bind(ctx), filter, update, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to increment user total")
	}

	return doc.toDomain(), nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, scope tenant.Scope, changes repository.ProfileChanges) (*entity.User, error) {
	filter, ok := scopeFilter(scope, "_id")
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if changes.IsEmpty() {
		return repo.FindInScope(ctx, scope)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := repo.coll.FindOneAndUpdate(repo.binder.bind(ctx), filter, profileUpdate(changes, time.Now().UTC()), opts).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrUserNotFound
		}
		if isDuplicateKey(err) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("mobile already registered in app " + scope.AppID)
		}
		if isValidationFailure(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	return doc.toDomain(), nil
}

// profileUpdate sets the changed fields. An empty email or pin removes the field.
func profileUpdate(changes repository.ProfileChanges, now time.Time) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now}}
	unset := bson.D{}

	if changes.Name != nil {
		set = append(set, bson.E{Key: "name", Value: normalizeName(*changes.Name)})
	}
	if changes.Mobile != nil {
		set = append(set, bson.E{Key: "mobile", Value: strings.TrimSpace(*changes.Mobile)})
	}
	if changes.Email != nil {
		if email := normalizeEmail(*changes.Email); email != "" {
			set = append(set, bson.E{Key: "email", Value: email})
		} else {
			unset = append(unset, bson.E{Key: "email", Value: ""})
		}
	}
	if changes.PinHash != nil {
		if *changes.PinHash != "" {
			set = append(set, bson.E{Key: "pin", Value: *changes.PinHash})
		} else {
			unset = append(unset, bson.E{Key: "pin", Value: ""})
		}
	}

	update := bson.D{{Key: "$set", Value: set}}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	return update
}

// List sorts on lastActiveDate; documents that never incremented have no such field and
// sort after every dated one in descending order.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	page := filter.Page.Normalize()
	direction := sortDirection(page.Order)

	opts := options.Find().
		SetSort(bson.D{{Key: "lastActiveDate", Value: direction}, {Key: "_id", Value: direction}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	ctx = repo.binder.bind(ctx)
	cursor, err := repo.coll.Find(ctx, userListFilter(filter), opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	var docs []*userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}

	return users, nil
}

func userListFilter(filter repository.UserFilter) bson.D {
	query := bson.D{}
	if filter.AppID != "" {
		query = append(query, bson.E{Key: "appId", Value: filter.AppID})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: pattern}},
			bson.D{{Key: "email", Value: pattern}},
		}})
	}

	return query
}

// scopeFilter matches idField against the scope's user and pins the tenant.
func scopeFilter(scope tenant.Scope, idField string) (bson.D, bool) {
	oid, ok := parseObjectID(scope.UserID)
	if !ok {
		return nil, false
	}

	return bson.D{{Key: idField, Value: oid}, {Key: "appId", Value: scope.AppID}}, true
}

func sortDirection(order repository.SortOrder) int {
	if order == repository.SortAsc {
		return 1
	}

	return -1
}
