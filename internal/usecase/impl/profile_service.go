package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "counterhub/internal/delivery/context"
	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/service"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"
	"counterhub/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	clock     service.Clock
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Clock     service.Clock `optional:"true"`
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		clock:     clockOrSystem(params.Clock),
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, scope tenant.Scope) (*entity.User, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindInScope(ctx, scope)
		if err != nil {
			return mapUserLookupError(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile applies the given fields and records a PROFILE_UPDATE activity listing them.
func (srv *profileService) UpdateProfile(ctx context.Context, scope tenant.Scope, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	changes, recorded, err := srv.buildChanges(input)
	if err != nil {
		return nil, err
	}

	if changes.IsEmpty() {
		return srv.GetProfile(ctx, scope)
	}

	now := srv.clock.Now()

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().UpdateProfile(ctx, scope, changes)
		if err != nil {
			return mapUserLookupError(err)
		}

		activity := &entity.Activity{
			UserID:    user.ID,
			AppID:     user.AppID,
			Kind:      entity.ActivityProfileUpdate,
			Metadata:  map[string]any{"changes": recorded},
			Timestamp: now,
		}

		return errors.Wrap(repoFactory.ActivityRepo().Log(ctx, activity), "failed to log PROFILE_UPDATE activity")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile",
			slog.String("userID", scope.UserID),
			slog.String("appId", scope.AppID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", user.ID), slog.Int("fields", len(recorded)))

	return user, nil
}

// buildChanges normalizes input into repository changes and the activity metadata.
// The PIN never appears in the metadata, only whether it was set or cleared.
func (srv *profileService) buildChanges(input *usecase.UpdateProfileInput) (repository.ProfileChanges, map[string]any, error) {
	var changes repository.ProfileChanges
	recorded := map[string]any{}

	if input == nil {
		return changes, recorded, nil
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return changes, nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name cannot be empty"), "invalid profile input")
		}
		changes.Name = &name
		recorded["name"] = name
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		changes.Email = &email
		recorded["email"] = email
	}

	if input.Mobile != nil {
		mobile := strings.TrimSpace(*input.Mobile)
		if mobile == "" {
			return changes, nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("mobile cannot be empty"), "invalid profile input")
		}
		changes.Mobile = &mobile
		recorded["mobile"] = mobile
	}

	if input.Pin != nil {
		pinHash := ""
		recorded["pin"] = "cleared"
		if pin := strings.TrimSpace(*input.Pin); pin != "" {
			hash, err := srv.hasher.Hash(pin)
			if err != nil {
				return changes, nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			pinHash = hash
			recorded["pin"] = "updated"
		}
		changes.PinHash = &pinHash
	}

	return changes, recorded, nil
}
