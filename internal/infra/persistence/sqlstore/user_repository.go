package sqlstore

import (
	"context"
	"strings"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
	"counterhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "failed to find user by id", "id = ?", uid)
}

func (repo *userRepository) FindInScope(ctx context.Context, scope tenant.Scope) (*entity.User, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "failed to find user in scope", "id = ? AND app_id = ?", uid, scope.AppID)
}

func (repo *userRepository) FindByMobileAndApp(ctx context.Context, mobile, appID string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by mobile", "mobile = ? AND app_id = ?", mobile, appID)
}

func (repo *userRepository) findOne(ctx context.Context, details string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and fills in the generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("mobile already registered in app " + user.AppID)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(errors.RootMessage(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = formatID(userM.ID)
	user.TotalCount = userM.TotalCount
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// IncrementTotal adds delta in a single UPDATE so concurrent increments never overwrite each other.
func (repo *userRepository) IncrementTotal(ctx context.Context, scope tenant.Scope, delta int64, at time.Time) (*entity.User, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND app_id = ?", uid, scope.AppID).
		Updates(map[string]any{
			"total_count":      gorm.Expr("total_count + ?", delta),
			"last_active_date": utc(at),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment user total")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindInScope(ctx, scope)
}

func (repo *userRepository) UpdateProfile(ctx context.Context, scope tenant.Scope, changes repository.ProfileChanges) (*entity.User, error) {
	uid, ok := parseID(scope.UserID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if changes.IsEmpty() {
		return repo.FindInScope(ctx, scope)
	}

	updates := map[string]any{}
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Email != nil {
		updates["email"] = optionalString(*changes.Email)
	}
	if changes.Mobile != nil {
		updates["mobile"] = *changes.Mobile
	}
	if changes.PinHash != nil {
		updates["pin_hash"] = optionalString(*changes.PinHash)
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND app_id = ?", uid, scope.AppID).
		Updates(updates).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("mobile already registered in app " + scope.AppID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	// MySQL reports zero affected rows when nothing changed, so existence is checked by reading back.
	return repo.FindInScope(ctx, scope)
}

// List returns users most recently active first; users that never incremented come last.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	page := filter.Page.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(COALESCE(email, '')) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	var userMs []*model.UserModel
	err := query.
		Order("last_active_date IS NULL").
		Order(orderClause("last_active_date", page.Order)).
		Order(orderClause("id", page.Order)).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
