package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"counterhub/config"
	apimiddleware "counterhub/internal/delivery/api/middleware"
	"counterhub/internal/delivery/api/response"
	"counterhub/internal/delivery/api/router"
	"counterhub/internal/delivery/api/router/handler"
	deliverycontext "counterhub/internal/delivery/context"
	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/service"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/infra/auth"
	mockUC "counterhub/internal/mocks/usecase"
	"counterhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo      *echo.Echo
	tokens    service.TokenService
	authUC    *mockUC.MockAuthUsecase
	counterUC *mockUC.MockCounterUsecase
	profileUC *mockUC.MockProfileUsecase
	adminUC   *mockUC.MockAdminUsecase
	healthUC  *mockUC.MockHealthUsecase
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newServerFixtures(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth.UserTokenTTL = time.Hour
	cfg.Auth.AdminTokenTTL = time.Hour
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.CORS.AllowOrigins = []string{"https://counter.example.com"}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := serverFixtures{
		tokens:    tokens,
		authUC:    mockUC.NewMockAuthUsecase(t),
		counterUC: mockUC.NewMockCounterUsecase(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
		adminUC:   mockUC.NewMockAdminUsecase(t),
		healthUC:  mockUC.NewMockHealthUsecase(t),
	}

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Logger: logger}),
			UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{ProfileUC: fx.profileUC, Logger: logger}),
			ActivityHandler: handler.NewActivityHandler(handler.ActivityHandlerParams{CounterUC: fx.counterUC, Logger: logger}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: fx.adminUC, Logger: logger}),
			HealthHandler:   handler.NewHealthHandler(handler.HealthHandlerParams{HealthUC: fx.healthUC}),
			AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokens),
			Config:          cfg,
		},
	})
	require.NoError(t, err)

	apiSrv, ok := srv.(*apiServer)
	require.True(t, ok)
	fx.echo = apiSrv.server

	return fx
}

func (fx serverFixtures) userToken(t *testing.T, userID, appID string) string {
	token, err := fx.tokens.GenerateUserToken(userID, appID, "Sita")
	require.NoError(t, err)

	return token
}

func (fx serverFixtures) adminToken(t *testing.T) string {
	token, err := fx.tokens.GenerateAdminToken("admin")
	require.NoError(t, err)

	return token
}

func (fx serverFixtures) do(t *testing.T, method, target, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestServer_Health(t *testing.T) {
	fx := newServerFixtures(t)
	fx.healthUC.EXPECT().Check(mock.Anything).Return(&usecase.HealthStatus{
		DatabaseType: "sqlite",
		Connected:    true,
		CheckedAt:    time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	})

	rec, env := fx.do(t, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2024-03-15T09:30:00Z","database":{"type":"sqlite","connected":true}}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_HealthDegraded(t *testing.T) {
	fx := newServerFixtures(t)
	fx.healthUC.EXPECT().Check(mock.Anything).Return(&usecase.HealthStatus{DatabaseType: "mongodb"})

	rec, _ := fx.do(t, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Login(t *testing.T) {
	fx := newServerFixtures(t)
	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Name: "Sita", Mobile: "0900", AppID: "japa"}).
		Return(&usecase.LoginOutput{
			Token:     "signed",
			User:      &entity.User{ID: "u1", Name: "Sita", Mobile: "0900", AppID: "japa", PinHash: "secret-hash"},
			IsNewUser: true,
		}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"name": "Sita", "mobile": "0900", "appId": "japa"})

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "signed", body.Token)
	assert.True(t, body.IsNewUser)
	assert.Equal(t, "u1", body.User.ID)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestServer_LoginValidation(t *testing.T) {
	fx := newServerFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"name": "Sita"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"mobile": "required"}, env.Error.Details)
}

func TestServer_AdminLoginRejected(t *testing.T) {
	fx := newServerFixtures(t)
	fx.authUC.EXPECT().AdminLogin(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin credentials mismatch"))

	rec, env := fx.do(t, http.MethodPost, "/api/auth/admin/login", "", map[string]string{"username": "admin", "password": "x"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestServer_UserRoutesRequireUserToken(t *testing.T) {
	fx := newServerFixtures(t)

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "missing token", token: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", wantCode: http.StatusForbidden},
		{name: "admin token", token: fx.adminToken(t), wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := fx.do(t, http.MethodGet, "/api/users/profile", tt.token, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestServer_GetProfileUsesTokenScope(t *testing.T) {
	fx := newServerFixtures(t)
	scope := tenant.Scope{UserID: "u1", AppID: "japa"}
	fx.profileUC.EXPECT().GetProfile(mock.Anything, scope).
		Return(&entity.User{ID: "u1", AppID: "japa", Name: "Sita", TotalCount: 108}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/users/profile", fx.userToken(t, "u1", "japa"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, int64(108), user.TotalCount)
}

func TestServer_UpdateProfileRejectsBadEmail(t *testing.T) {
	fx := newServerFixtures(t)

	rec, env := fx.do(t, http.MethodPut, "/api/users/profile", fx.userToken(t, "u1", "japa"), map[string]string{"email": "nope"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"email": "email"}, env.Error.Details)
}

func TestServer_AddCountDefaultsToOne(t *testing.T) {
	fx := newServerFixtures(t)
	scope := tenant.Scope{UserID: "u1", AppID: "ram-bank"}
	fx.counterUC.EXPECT().AddCount(mock.Anything, scope, int64(1)).
		Return(&usecase.AddCountOutput{TotalCount: 9, Summary: &entity.DailySummary{Date: "2024-03-15", DailyCount: 1, Streak: 2}}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/activities/add-count", fx.userToken(t, "u1", "ram-bank"), map[string]any{})

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.AddCountResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, int64(9), body.TotalCount)
	assert.Equal(t, 2, body.DailySummary.Streak)
}

func TestServer_AddCountRejectsZero(t *testing.T) {
	fx := newServerFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/api/activities/add-count", fx.userToken(t, "u1", "ram-bank"), map[string]any{"count": 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_MyActivitiesPaging(t *testing.T) {
	fx := newServerFixtures(t)
	scope := tenant.Scope{UserID: "u1", AppID: "ram-bank"}
	fx.counterUC.EXPECT().
		MyActivities(mock.Anything, scope, repository.Page{Limit: 10, Offset: 10, Order: repository.SortDesc}).
		Return([]*entity.Activity{{ID: "a1", Kind: entity.ActivityCountIncrement, Count: 1}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/activities/my-activities?limit=10&page=2", fx.userToken(t, "u1", "ram-bank"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Activities []handler.ActivityResponse `json:"activities"`
		Pagination handler.Pagination         `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, handler.Pagination{Page: 2, Limit: 10}, body.Pagination)
	require.Len(t, body.Activities, 1)
	assert.Equal(t, "COUNT_INCREMENT", body.Activities[0].ActivityType)
}

func TestServer_AdminRoutes(t *testing.T) {
	fx := newServerFixtures(t)

	t.Run("user token is forbidden", func(t *testing.T) {
		rec, _ := fx.do(t, http.MethodGet, "/api/admin/stats", fx.userToken(t, "u1", "ram-bank"), nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("stats", func(t *testing.T) {
		fx.adminUC.EXPECT().Stats(mock.Anything, "ram-bank").
			Return(&entity.TenantStats{AppID: "ram-bank", TotalUsers: 1, ActiveToday: 1, TodayTotalCount: 27}, nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/admin/stats?appId=ram-bank", fx.adminToken(t), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"appId":"ram-bank","totalUsers":1,"activeToday":1,"todayTotalCount":27}`, string(env.Data))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx.adminUC.EXPECT().GetUserDetail(mock.Anything, "missing").
			Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/admin/users/missing", fx.adminToken(t), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		fx.adminUC.EXPECT().ListApps(mock.Anything).Return(nil, errors.New("socket closed")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/admin/apps", fx.adminToken(t), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "socket closed")
	})

	t.Run("database error keeps the backend message", func(t *testing.T) {
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("relation \"users\" does not exist"), "list users")
		fx.adminUC.EXPECT().ListUsers(mock.Anything, mock.Anything).Return(nil, errors.Wrap(dbErr, "failed to list users")).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/admin/users", fx.adminToken(t), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Message, "does not exist")
	})
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	fx := newServerFixtures(t)
	fx.healthUC.EXPECT().Check(mock.Anything).Return(&usecase.HealthStatus{DatabaseType: "sqlite", Connected: true})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-42"`)
}
