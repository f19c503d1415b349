package sqlstore

import (
	"context"
	"database/sql"
	"time"

	domainerrors "counterhub/internal/domain/errors"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
// Every unit of work pins one pooled connection, acquired within acquireTimeout.
type gormTransactionManager struct {
	db             *gorm.DB
	acquireTimeout time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction and uses it to create repository instances
// that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) ActivityRepo() repository.ActivityRepository {
	return NewActivityRepository(f.tx)
}

func (f *gormRepositoryFactory) DailySummaryRepo() repository.DailySummaryRepository {
	return NewDailySummaryRepository(f.tx)
}

func (f *gormRepositoryFactory) StatsRepo() repository.StatsRepository {
	return NewStatsRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, acquireTimeout time.Duration) repository.TransactionManager {
	return &gormTransactionManager{db: db, acquireTimeout: acquireTimeout}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	conn, err := tm.acquire(ctx)
	if err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to acquire connection")
	}
	defer conn.Close()

	session := tm.db.WithContext(ctx)
	session.Statement.ConnPool = conn

	tx := session.Begin()
	if tx.Error != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(tx.Error.Error()), "failed to begin transaction")
	}

	// Roll back on panic and re-panic so the recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WithDetails(err.Error()), "failed to commit transaction")
	}

	return nil
}

// acquire takes a connection from the pool, failing once acquireTimeout elapses
// instead of queueing indefinitely.
func (tm *gormTransactionManager) acquire(ctx context.Context) (*sql.Conn, error) {
	sqlDB, err := tm.db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	acquireCtx := ctx
	if tm.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, tm.acquireTimeout)
		defer cancel()
	}

	conn, err := sqlDB.Conn(acquireCtx)
	if err != nil {
		return nil, errors.Wrapf(err, "no connection available within %s", tm.acquireTimeout)
	}

	return conn, nil
}
