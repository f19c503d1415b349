package mongostore

import (
	"context"
	"sync"
	"testing"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"
	"counterhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateFindAndScope(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := repos(store).UserRepo()

	a := createUser(t, store, "Sita", "9999999999", "ram-bank")
	b := createUser(t, store, "Gita", "9999999999", "hanuman-chalisa")
	assert.NotEqual(t, a.ID, b.ID)

	found, err := repo.FindByMobileAndApp(ctx, "9999999999", "ram-bank")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	_, err = repo.FindInScope(ctx, tenant.Scope{UserID: a.ID, AppID: "hanuman-chalisa"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "42")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Create(ctx, &entity.User{Name: "Dup", Mobile: "9999999999", AppID: "ram-bank"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_ConcurrentIncrements(t *testing.T) {
	store := newTestStore(t)
	user := createUser(t, store, "Sita", "9999999999", "ram-bank")

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- execute(t, store, func(f repository.RepositoryFactory) error {
				updated, err := f.UserRepo().IncrementTotal(context.Background(), scopeOf(user), 1, time.Now())
				if err != nil {
					return err
				}
				_, err = f.DailySummaryRepo().Upsert(context.Background(), repository.SummaryDelta{
					UserID:        user.ID,
					AppID:         user.AppID,
					Date:          "2026-03-01",
					Delta:         1,
					TotalSnapshot: updated.TotalCount,
					Streak:        1,
				})

				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	final, err := repos(store).UserRepo().FindInScope(context.Background(), scopeOf(user))
	require.NoError(t, err)
	assert.Equal(t, int64(workers), final.TotalCount)

	summary, err := repos(store).DailySummaryRepo().FindByDate(context.Background(), scopeOf(user), "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), summary.DailyCount)
	assert.Equal(t, int64(workers), summary.TotalCount)
}

func TestUserRepository_UpdateProfileAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := repos(store).UserRepo()

	never := createUser(t, store, "Never", "1000000001", "ram-bank")
	active := createUser(t, store, "Active", "1000000002", "ram-bank")

	email := "Active@Example.com"
	updated, err := repo.UpdateProfile(ctx, scopeOf(active), repository.ProfileChanges{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "active@example.com", updated.Email)

	_, err = repo.IncrementTotal(ctx, scopeOf(active), 2, time.Now())
	require.NoError(t, err)

	users, err := repo.List(ctx, repository.UserFilter{AppID: "ram-bank"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, []string{active.ID, never.ID}, []string{users[0].ID, users[1].ID})

	found, err := repo.List(ctx, repository.UserFilter{Search: "EXAMPLE.COM"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, active.ID, found[0].ID)
}

func TestActivityRepository_LogAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "Sita", "9999999999", "ram-bank")
	repo := repos(store).ActivityRepo()

	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		require.NoError(t, repo.Log(ctx, &entity.Activity{
			UserID:    user.ID,
			AppID:     user.AppID,
			Kind:      entity.ActivityCountIncrement,
			Count:     int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	own, err := repo.ListByUser(ctx, scopeOf(user), repository.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, int64(3), own[0].Count)
	assert.Nil(t, own[0].User)

	all, err := repo.List(ctx, repository.ActivityFilter{Kind: entity.ActivityCountIncrement})
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "Sita", all[0].User.Name)

	err = repo.Log(ctx, &entity.Activity{UserID: "0123456789abcdef01234567", AppID: "ram-bank", Kind: entity.ActivityLogin})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStatsRepository(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	f := repos(store)

	a := createUser(t, store, "A", "1", "ram-bank")
	createUser(t, store, "B", "2", "ram-bank")
	c := createUser(t, store, "C", "3", "hanuman-chalisa")

	now := time.Now()
	require.NoError(t, f.ActivityRepo().Log(ctx, &entity.Activity{UserID: a.ID, AppID: a.AppID, Kind: entity.ActivityLogin, Timestamp: now}))
	require.NoError(t, f.ActivityRepo().Log(ctx, &entity.Activity{UserID: a.ID, AppID: a.AppID, Kind: entity.ActivityLogin, Timestamp: now}))
	require.NoError(t, f.ActivityRepo().Log(ctx, &entity.Activity{UserID: c.ID, AppID: c.AppID, Kind: entity.ActivityRegister, Timestamp: now}))

	_, err := f.DailySummaryRepo().Upsert(ctx, repository.SummaryDelta{UserID: a.ID, AppID: a.AppID, Date: "2026-03-01", Delta: 7, TotalSnapshot: 7, Streak: 1})
	require.NoError(t, err)

	query := repository.StatsQuery{AppID: "ram-bank", Since: now.Add(-time.Minute), Date: "2026-03-01"}
	stats, err := f.StatsRepo().TenantStats(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, &entity.TenantStats{AppID: "ram-bank", TotalUsers: 2, ActiveToday: 1, TodayTotalCount: 7}, stats)

	query.AppID = ""
	all, err := f.StatsRepo().TenantStats(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.TotalUsers)
	assert.Equal(t, int64(2), all.ActiveToday)

	apps, err := f.StatsRepo().ListApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.AppUsage{
		{AppID: "hanuman-chalisa", Name: "hanuman-chalisa", UserCount: 1},
		{AppID: "ram-bank", Name: "ram-bank", UserCount: 2},
	}, apps)
}
