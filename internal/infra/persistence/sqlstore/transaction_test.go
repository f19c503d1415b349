package sqlstore

import (
	"context"
	"testing"
	"time"

	"counterhub/internal/domain/entity"
	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := execute(t, store, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Name: "Sita", Mobile: "9999999999", AppID: "ram-bank"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(store.DB()).FindByMobileAndApp(ctx, "9999999999", "ram-bank")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_CommitsAllSteps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "Sita", "9999999999", "ram-bank")

	err := execute(t, store, func(f repository.RepositoryFactory) error {
		updated, err := f.UserRepo().IncrementTotal(ctx, scopeOf(user), 2, time.Now())
		if err != nil {
			return err
		}
		if err := f.ActivityRepo().Log(ctx, &entity.Activity{UserID: user.ID, AppID: user.AppID, Kind: entity.ActivityCountIncrement, Count: 2}); err != nil {
			return err
		}
		_, err = f.DailySummaryRepo().Upsert(ctx, repository.SummaryDelta{UserID: user.ID, AppID: user.AppID, Date: "2026-03-01", Delta: 2, TotalSnapshot: updated.TotalCount, Streak: 1})

		return err
	})
	require.NoError(t, err)

	activities, err := NewActivityRepository(store.DB()).ListByUser(ctx, scopeOf(user), repository.Page{})
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestTransactionManager_PanicRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = store.TransactionManager().Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, &entity.User{Name: "Sita", Mobile: "9999999999", AppID: "ram-bank"})
			panic("handler bug")
		})
	})

	_, err := NewUserRepository(store.DB()).FindByMobileAndApp(ctx, "9999999999", "ram-bank")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_AcquireTimeout(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Database.Pool.MaxOpenConns = 1
	cfg.Database.Pool.AcquireTimeout = 100 * time.Millisecond
	store := openTestStore(t, cfg)

	holding := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- store.TransactionManager().Execute(context.Background(), func(repository.RepositoryFactory) error {
			close(holding)
			<-release

			return nil
		})
	}()
	<-holding

	start := time.Now()
	err := store.TransactionManager().Execute(context.Background(), func(repository.RepositoryFactory) error {
		t.Error("unit of work must not run without a connection")

		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
	assert.Less(t, time.Since(start), 5*time.Second)

	close(release)
	require.NoError(t, <-done)

	// The pool recovers once the holder finishes.
	require.NoError(t, store.TransactionManager().Execute(context.Background(), func(repository.RepositoryFactory) error { return nil }))
}
