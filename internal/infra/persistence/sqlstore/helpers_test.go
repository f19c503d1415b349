package sqlstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"counterhub/config"
	"counterhub/internal/domain/entity"
	"counterhub/internal/domain/repository"
	"counterhub/internal/domain/tenant"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Type = DialectSQLite
	cfg.Database.SQLite.Path = filepath.Join(t.TempDir(), "counterhub.sqlite")
	cfg.SecretKey.Access = "test-secret"
	cfg.ApplyDefaults()
	cfg.Database.Pool.AcquireTimeout = 10 * time.Second

	return cfg
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return openTestStore(t, newTestConfig(t))
}

func openTestStore(t *testing.T, cfg *config.Config) *Store {
	t.Helper()

	store, err := Open(context.Background(), cfg, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	return store
}

func execute(t *testing.T, store *Store, fn func(repository.RepositoryFactory) error) error {
	t.Helper()

	return store.TransactionManager().Execute(context.Background(), fn)
}

func createUser(t *testing.T, store *Store, name, mobile, appID string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Mobile: mobile, AppID: appID}
	require.NoError(t, execute(t, store, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(context.Background(), user)
	}))
	require.NotEmpty(t, user.ID)

	return user
}

func scopeOf(u *entity.User) tenant.Scope {
	return tenant.Scope{UserID: u.ID, AppID: u.AppID}
}
