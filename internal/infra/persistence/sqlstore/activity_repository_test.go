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

func TestActivityRepository_ListByUserPaging(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "Sita", "9999999999", "ram-bank")
	other := createUser(t, store, "Gita", "9999999999", "hanuman-chalisa")
	repo := NewActivityRepository(store.DB())

	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	ids := make([]string, 0, 25)
	for i := range 25 {
		activity := &entity.Activity{
			UserID:    user.ID,
			AppID:     user.AppID,
			Kind:      entity.ActivityCountIncrement,
			Count:     int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Log(ctx, activity))
		ids = append(ids, activity.ID)
	}
	require.NoError(t, repo.Log(ctx, &entity.Activity{UserID: other.ID, AppID: other.AppID, Kind: entity.ActivityLogin, Timestamp: base.Add(time.Hour)}))

	page, err := repo.ListByUser(ctx, scopeOf(user), repository.PageFromNumber(2, 10))
	require.NoError(t, err)
	require.Len(t, page, 10)

	// Page two skips the ten most recent: entries 14 down to 5.
	for i, activity := range page {
		assert.Equal(t, ids[14-i], activity.ID)
		assert.Equal(t, user.AppID, activity.AppID)
	}
	for i := 1; i < len(page); i++ {
		assert.True(t, page[i-1].Timestamp.After(page[i].Timestamp))
	}

	last, err := repo.ListByUser(ctx, scopeOf(user), repository.PageFromNumber(3, 10))
	require.NoError(t, err)
	assert.Len(t, last, 5)

	asc, err := repo.ListByUser(ctx, scopeOf(user), repository.Page{Limit: 1, Order: repository.SortAsc})
	require.NoError(t, err)
	require.Len(t, asc, 1)
	assert.Equal(t, ids[0], asc[0].ID)
}

func TestActivityRepository_ListFiltersAndOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	sita := createUser(t, store, "Sita", "9999999999", "ram-bank")
	gita := createUser(t, store, "Gita", "8888888888", "hanuman-chalisa")
	repo := NewActivityRepository(store.DB())

	now := time.Now()
	require.NoError(t, repo.Log(ctx, &entity.Activity{UserID: sita.ID, AppID: sita.AppID, Kind: entity.ActivityRegister, Timestamp: now.Add(-2 * time.Minute), Metadata: map[string]any{"source": "test"}}))
	require.NoError(t, repo.Log(ctx, &entity.Activity{UserID: sita.ID, AppID: sita.AppID, Kind: entity.ActivityCountIncrement, Count: 3, Timestamp: now.Add(-time.Minute)}))
	require.NoError(t, repo.Log(ctx, &entity.Activity{UserID: gita.ID, AppID: gita.AppID, Kind: entity.ActivityRegister, Timestamp: now}))

	all, err := repo.List(ctx, repository.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "Gita", all[0].User.Name)

	registers, err := repo.List(ctx, repository.ActivityFilter{Kind: entity.ActivityRegister})
	require.NoError(t, err)
	assert.Len(t, registers, 2)

	scoped, err := repo.List(ctx, repository.ActivityFilter{AppID: "ram-bank"})
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, activity := range scoped {
		assert.Equal(t, "ram-bank", activity.AppID)
		assert.Equal(t, "Sita", activity.User.Name)
	}
	assert.Equal(t, "test", scoped[1].Metadata["source"])

	byUser, err := repo.List(ctx, repository.ActivityFilter{UserID: gita.ID})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, gita.ID, byUser[0].UserID)
}

func TestActivityRepository_LogValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createUser(t, store, "Sita", "9999999999", "ram-bank")
	repo := NewActivityRepository(store.DB())

	err := repo.Log(ctx, &entity.Activity{UserID: user.ID, AppID: user.AppID, Kind: "DELETE"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = repo.Log(ctx, &entity.Activity{UserID: "999", AppID: user.AppID, Kind: entity.ActivityLogin})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	activity := &entity.Activity{UserID: user.ID, AppID: user.AppID, Kind: entity.ActivityLogout}
	require.NoError(t, repo.Log(ctx, activity))
	assert.False(t, activity.Timestamp.IsZero())
	assert.NotEmpty(t, activity.ID)
}
