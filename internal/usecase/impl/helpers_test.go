package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"counterhub/config"
	"counterhub/internal/domain/repository"
	mockRepo "counterhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Counter = config.CounterConfig{DefaultAppID: "ram-bank", Timezone: "UTC"}
	cfg.Admin = config.AdminConfig{Username: "admin", Password: "s3cret"}

	return cfg
}

// expectExecute runs fn against a fresh factory prepared by setup and makes Execute return returnErr.
func expectExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	ctx context.Context,
	returnErr error,
	setup func(factory *mockRepo.MockRepositoryFactory),
) *mockRepo.MockTransactionManager_Execute_Call {
	call := txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(returnErr)
	call.Once()

	return call
}
