// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
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

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	defaultAppID string
	admin        config.AdminConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        clockOrSystem(params.Clock),
		defaultAppID: params.Config.Counter.DefaultAppID,
		admin:        params.Config.Admin,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login looks the user up by (appId, mobile) and creates it on first sight.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	name := strings.TrimSpace(input.Name)
	mobile := strings.TrimSpace(input.Mobile)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "invalid login input")
	}
	if mobile == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("mobile is required"), "invalid login input")
	}
	appID, err := tenant.NormalizeAppID(input.AppID, srv.defaultAppID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid login input")
	}

	output, err := srv.login(ctx, name, mobile, appID)
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// A concurrent first login for the same pair won the insert; this attempt now finds it.
		srv.log(ctx).Info("Retrying login after concurrent registration", slog.String("appId", appID))
		output, err = srv.login(ctx, name, mobile, appID)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.String("appId", appID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	token, err := srv.tokenService.GenerateUserToken(output.User.ID, output.User.AppID, output.User.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user token")
	}
	output.Token = token

	srv.log(ctx).Info("User logged in",
		slog.String("userID", output.User.ID),
		slog.String("appId", output.User.AppID),
		slog.Bool("isNewUser", output.IsNewUser),
	)

	return output, nil
}

func (srv *authService) login(ctx context.Context, name, mobile, appID string) (*usecase.LoginOutput, error) {
	now := srv.clock.Now()
	output := &usecase.LoginOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByMobileAndApp(ctx, mobile, appID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			user = &entity.User{Name: name, Mobile: mobile, AppID: appID}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			output.IsNewUser = true
		case err != nil:
			return errors.Wrap(err, "failed to find user by mobile")
		}

		kind := entity.ActivityLogin
		if output.IsNewUser {
			kind = entity.ActivityRegister
		}
		activity := &entity.Activity{
			UserID:    user.ID,
			AppID:     user.AppID,
			Kind:      kind,
			Metadata:  map[string]any{"timestamp": now.UTC().Format(time.RFC3339)},
			Timestamp: now,
		}
		if err := repoFactory.ActivityRepo().Log(ctx, activity); err != nil {
			return errors.Wrapf(err, "failed to log %s activity", kind)
		}

		output.User = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AdminLogin checks the configured administrator. A bcrypt PasswordHash wins over a plain Password.
func (srv *authService) AdminLogin(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	if srv.admin.Username == "" {
		srv.log(ctx).Warn("Admin login attempted but no admin account is configured")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin account not configured")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(srv.admin.Username)) == 1

	var passwordOK bool
	switch {
	case srv.admin.PasswordHash != "":
		passwordOK = srv.hasher.Check(input.Password, srv.admin.PasswordHash)
	case srv.admin.Password != "":
		passwordOK = subtle.ConstantTimeCompare([]byte(input.Password), []byte(srv.admin.Password)) == 1
	}

	if !usernameOK || !passwordOK {
		srv.log(ctx).Warn("Admin login rejected", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin credentials mismatch")
	}

	token, err := srv.tokenService.GenerateAdminToken(srv.admin.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", srv.admin.Username))

	return &usecase.AdminLoginOutput{Token: token, Username: srv.admin.Username}, nil
}

func (srv *authService) Logout(ctx context.Context, scope tenant.Scope) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	now := srv.clock.Now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindInScope(ctx, scope); err != nil {
			return mapUserLookupError(err)
		}

		activity := &entity.Activity{
			UserID:    scope.UserID,
			AppID:     scope.AppID,
			Kind:      entity.ActivityLogout,
			Timestamp: now,
		}

		return errors.Wrap(repoFactory.ActivityRepo().Log(ctx, activity), "failed to log LOGOUT activity")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute logout transaction")
	}

	return nil
}
