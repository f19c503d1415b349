package impl

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"counterhub/config"
	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/infra/persistence/sqlstore"
	mockService "counterhub/internal/mocks/service"
	"counterhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSQLiteTxManager(t *testing.T) (repository.TransactionManager, *config.Config) {
	t.Helper()

	cfg := newTestConfig()
	cfg.Database.Type = sqlstore.DialectSQLite
	cfg.Database.SQLite.Path = filepath.Join(t.TempDir(), "counterhub.sqlite")
	cfg.SecretKey.Access = "test-secret"
	cfg.ApplyDefaults()

	store, err := sqlstore.Open(context.Background(), cfg, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	return store.TransactionManager(), cfg
}

func newSQLiteAuthService(t *testing.T, txManager repository.TransactionManager, cfg *config.Config) usecase.AuthUsecase {
	t.Helper()

	tokenService := mockService.NewMockTokenService(t)
	tokenService.EXPECT().GenerateUserToken(mock.Anything, mock.Anything, mock.Anything).Return("token", nil).Maybe()

	return NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       mockService.NewMockPasswordHasher(t),
		TokenService: tokenService,
		Clock:        fixedClock{now: testNow},
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
}

func newSQLiteCounterService(t *testing.T, txManager repository.TransactionManager, cfg *config.Config, now time.Time) usecase.CounterUsecase {
	t.Helper()

	srv, err := NewCounterService(CounterServiceParams{
		TxManager: txManager,
		Clock:     fixedClock{now: now},
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return srv
}

func TestCounterService_SQLite_ConcurrentAddCount(t *testing.T) {
	ctx := context.Background()
	txManager, cfg := newSQLiteTxManager(t)
	authSvc := newSQLiteAuthService(t, txManager, cfg)
	counterSvc := newSQLiteCounterService(t, txManager, cfg, testNow)

	login, err := authSvc.Login(ctx, &usecase.LoginInput{Name: "Asha", Mobile: "9999999999", AppID: "ram-bank"})
	require.NoError(t, err)
	scope := tenant.Scope{UserID: login.User.ID, AppID: login.User.AppID}

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := counterSvc.AddCount(ctx, scope, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	summaries, err := counterSvc.DailySummaries(ctx, scope, 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2024-03-15", summaries[0].Date)
	assert.Equal(t, int64(workers), summaries[0].DailyCount)
	assert.Equal(t, int64(workers), summaries[0].TotalCount)
	assert.Equal(t, 1, summaries[0].Streak)

	activities, err := counterSvc.MyActivities(ctx, scope, repository.Page{Limit: 100})
	require.NoError(t, err)
	increments := 0
	for _, a := range activities {
		if a.Kind == entity.ActivityCountIncrement {
			increments++
		}
	}
	assert.Equal(t, workers, increments)
}

func TestCounterService_SQLite_StreakAcrossDays(t *testing.T) {
	ctx := context.Background()
	txManager, cfg := newSQLiteTxManager(t)
	authSvc := newSQLiteAuthService(t, txManager, cfg)

	login, err := authSvc.Login(ctx, &usecase.LoginInput{Name: "Asha", Mobile: "9999999999", AppID: "ram-bank"})
	require.NoError(t, err)
	scope := tenant.Scope{UserID: login.User.ID, AppID: login.User.AppID}

	day1 := newSQLiteCounterService(t, txManager, cfg, testNow)
	day2 := newSQLiteCounterService(t, txManager, cfg, testNow.Add(24*time.Hour))
	day4 := newSQLiteCounterService(t, txManager, cfg, testNow.Add(72*time.Hour))

	out, err := day1.AddCount(ctx, scope, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.Streak)

	out, err = day2.AddCount(ctx, scope, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.Streak)
	assert.Equal(t, int64(5), out.TotalCount)

	out, err = day2.AddCount(ctx, scope, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.Streak)
	assert.Equal(t, int64(4), out.Summary.DailyCount)

	out, err = day4.AddCount(ctx, scope, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.Streak)
	assert.Equal(t, int64(7), out.TotalCount)
}

func TestAuthService_SQLite_ConcurrentLogins(t *testing.T) {
	ctx := context.Background()
	txManager, cfg := newSQLiteTxManager(t)
	authSvc := newSQLiteAuthService(t, txManager, cfg)

	const workers = 30
	var wg sync.WaitGroup
	results := make(chan *usecase.LoginOutput, workers)
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := authSvc.Login(ctx, &usecase.LoginInput{Name: "Ravi", Mobile: "8888888888", AppID: "hanuman-chalisa"})
			if err != nil {
				errs <- err
				return
			}
			results <- out
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	userIDs := map[string]struct{}{}
	created := 0
	for out := range results {
		userIDs[out.User.ID] = struct{}{}
		if out.IsNewUser {
			created++
		}
	}
	assert.Len(t, userIDs, 1)
	assert.Equal(t, 1, created)
}
