package mongostore

import (
	"context"
	"log/slog"

	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// sessionBinder carries the session a repository runs under. A nil session means the
// repository writes directly, outside any transaction.
type sessionBinder struct {
	sess mongo.Session
}

func (b sessionBinder) bind(ctx context.Context) context.Context {
	if b.sess == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, b.sess)
}

// inTransaction reports whether writes run inside a multi-document transaction.
func (b sessionBinder) inTransaction() bool {
	return b.sess != nil
}

type transactionManager struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	logger       *slog.Logger
}

type repositoryFactory struct {
	db     *mongo.Database
	binder sessionBinder
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return newUserRepository(f.db, f.binder)
}

func (f *repositoryFactory) ActivityRepo() repository.ActivityRepository {
	return newActivityRepository(f.db, f.binder)
}

func (f *repositoryFactory) DailySummaryRepo() repository.DailySummaryRepository {
	return newDailySummaryRepository(f.db, f.binder)
}

func (f *repositoryFactory) StatsRepo() repository.StatsRepository {
	return newStatsRepository(f.db, f.binder)
}

// NewTransactionManager returns a manager that wraps each unit of work in a multi-document
// transaction when transactions is true. Otherwise fn runs without a session.
func NewTransactionManager(client *mongo.Client, db *mongo.Database, transactions bool, logger *slog.Logger) repository.TransactionManager {
	return &transactionManager{client: client, db: db, transactions: transactions, logger: logger}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&repositoryFactory{db: tm.db})
	}

	sess, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to start session")
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	var fnErr error
	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		fnErr = fn(&repositoryFactory{db: tm.db, binder: sessionBinder{sess: sess}})

		return nil, fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}

	tm.logger.WarnContext(ctx, "MongoDB transaction failed", slog.Any("error", err))

	return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to commit transaction")
}
