package mongostore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
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

// newTestStore connects to the server named by MONGODB_TEST_URI and isolates the test in a
// throwaway database. MONGODB_TEST_TRANSACTIONS=true exercises the session path.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	cfg := &config.Config{}
	cfg.Database.Type = "mongodb"
	cfg.Database.MongoDB.URI = uri
	cfg.Database.MongoDB.Database = fmt.Sprintf("counterhub_test_%d", time.Now().UnixNano())
	cfg.Database.MongoDB.Transactions = os.Getenv("MONGODB_TEST_TRANSACTIONS") == "true"
	cfg.SecretKey.Access = "test-secret"
	cfg.ApplyDefaults()

	store, err := Open(context.Background(), cfg, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Database().Drop(context.Background())
		_ = store.Close(context.Background())
	})

	return store
}

func execute(t *testing.T, store *Store, fn func(repository.RepositoryFactory) error) error {
	t.Helper()

	return store.TransactionManager().Execute(context.Background(), fn)
}

func repos(store *Store) repository.RepositoryFactory {
	return &repositoryFactory{db: store.Database()}
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
