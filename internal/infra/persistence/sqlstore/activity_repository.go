package sqlstore

import (
	"context"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Log appends one activity. The owning user must exist.
func (repo *activityRepository) Log(ctx context.Context, activity *entity.Activity) error {
	if !activity.Kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown activity type " + activity.Kind.String())
	}
	uid, ok := parseID(activity.UserID)
	if !ok {
		return repository.ErrUserNotFound
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	activityM := fromActivityDomain(activity, uid)
	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "activity owner")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to log activity")
	}

	activity.ID = formatID(activityM.ID)

	return nil
}

func (repo *activityRepository) ListByUser(ctx context.Context, scope tenant.Scope, page repository.Page) ([]*entity.Activity, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return []*entity.Activity{}, nil
	}

	return repo.list(repo.db.WithContext(ctx).Where("user_id = ? AND app_id = ?", uid, scope.AppID), page)
}

// List spans tenants unless the filter names one and attaches the owner's name and email.
func (repo *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	})
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if filter.Kind != "" {
		query = query.Where("activity_type = ?", filter.Kind.String())
	}
	if filter.UserID != "" {
		uid, ok := parseID(filter.UserID)
		if !ok {
			return []*entity.Activity{}, nil
		}
		query = query.Where("user_id = ?", uid)
	}

	return repo.list(query, filter.Page)
}

func (repo *activityRepository) list(query *gorm.DB, page repository.Page) ([]*entity.Activity, error) {
	page = page.Normalize()

	var activityMs []*model.ActivityModel
	err := query.
		Order(orderClause("timestamp", page.Order)).
		Order(orderClause("id", page.Order)).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&activityMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for _, activityM := range activityMs {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}
