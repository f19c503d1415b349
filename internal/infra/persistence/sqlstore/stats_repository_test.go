package sqlstore

import (
	"context"
	"testing"
	"time"

	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_TenantStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := createUser(t, store, "A", "9999999999", "ram-bank")
	b := createUser(t, store, "B", "9999999999", "hanuman-chalisa")
	c := createUser(t, store, "C", "7777777777", "ram-bank")

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	activities := NewActivityRepository(store.DB())
	log := func(u *entity.User, kind entity.ActivityKind, at time.Time) {
		require.NoError(t, activities.Log(ctx, &entity.Activity{UserID: u.ID, AppID: u.AppID, Kind: kind, Timestamp: at}))
	}
	log(a, entity.ActivityLogin, since.Add(time.Hour))
	log(a, entity.ActivityLogin, since.Add(2*time.Hour)) // counted once
	log(b, entity.ActivityRegister, since.Add(time.Hour))
	log(c, entity.ActivityLogin, since.Add(-time.Hour)) // yesterday
	log(c, entity.ActivityCountIncrement, since.Add(time.Hour))

	summaries := NewDailySummaryRepository(store.DB())
	for _, delta := range []repository.SummaryDelta{
		{UserID: a.ID, AppID: a.AppID, Date: "2026-03-01", Delta: 5, TotalSnapshot: 5, Streak: 1},
		{UserID: b.ID, AppID: b.AppID, Date: "2026-03-01", Delta: 7, TotalSnapshot: 7, Streak: 1},
		{UserID: c.ID, AppID: c.AppID, Date: "2026-02-28", Delta: 11, TotalSnapshot: 11, Streak: 1},
	} {
		_, err := summaries.Upsert(ctx, delta)
		require.NoError(t, err)
	}

	repo := NewStatsRepository(store.DB())

	ramBank, err := repo.TenantStats(ctx, repository.StatsQuery{AppID: "ram-bank", Since: since, Date: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, &entity.TenantStats{AppID: "ram-bank", TotalUsers: 2, ActiveToday: 1, TodayTotalCount: 5}, ramBank)

	all, err := repo.TenantStats(ctx, repository.StatsQuery{Since: since, Date: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, &entity.TenantStats{TotalUsers: 3, ActiveToday: 2, TodayTotalCount: 12}, all)

	empty, err := repo.TenantStats(ctx, repository.StatsQuery{AppID: "unknown-app", Since: since, Date: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, &entity.TenantStats{AppID: "unknown-app"}, empty)
}

func TestStatsRepository_ListApps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createUser(t, store, "A", "1", "ram-bank")
	createUser(t, store, "B", "2", "ram-bank")
	createUser(t, store, "C", "1", "hanuman-chalisa")
	createUser(t, store, "D", "1", "om-japa")

	apps, err := NewStatsRepository(store.DB()).ListApps(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.AppUsage{
		{AppID: "hanuman-chalisa", Name: "hanuman-chalisa", UserCount: 1},
		{AppID: "om-japa", Name: "om-japa", UserCount: 1},
		{AppID: "ram-bank", Name: "ram-bank", UserCount: 2},
	}, apps)
}
