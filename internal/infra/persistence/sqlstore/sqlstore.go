// Package sqlstore is the relational implementation of the persistence layer.
// One set of GORM models and repositories serves MySQL, PostgreSQL and SQLite; only the dialector differs.
package sqlstore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"counterhub/config"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"

	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Store owns the GORM handle and the underlying pool for the process lifetime.
type Store struct {
	db             *gorm.DB
	sqlDB          *sql.DB
	dialect        string
	minIdle        int
	maxOpen        int
	acquireTimeout time.Duration
	logger         *slog.Logger
	stopMonitor    context.CancelFunc
}

// Open connects to the configured relational dialect, applies the pool bounds, verifies the
// connection and synchronises the schema. Any failure is fatal to startup.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	dialector, err := newDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Multi-step writes use explicit transactions through txManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg, cfg.Database.Type),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", cfg.Database.Type)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s sql.DB", cfg.Database.Type)
	}
	configurePool(sqlDB, cfg.Database.Pool)

	store := &Store{
		db:             db,
		sqlDB:          sqlDB,
		dialect:        cfg.Database.Type,
		minIdle:        cfg.Database.Pool.MinIdleConns,
		maxOpen:        cfg.Database.Pool.MaxOpenConns,
		acquireTimeout: cfg.Database.Pool.AcquireTimeout,
		logger:         logger,
	}

	pingCtx, cancel := context.WithTimeout(ctx, store.acquireTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrapf(err, "failed to ping %s", store.dialect)
	}

	if err := SyncSchema(ctx, db, cfg.Database.Schema, logger); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	if err := store.topUpIdle(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	store.stopMonitor = cancelMonitor
	go store.monitorDBPool(monitorCtx, dbPoolMonitorInterval)

	return store, nil
}

func configurePool(sqlDB *sql.DB, pool config.PoolConfig) {
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(max(pool.MaxOpenConns, pool.MinIdleConns))
	sqlDB.SetConnMaxIdleTime(pool.IdleTimeout)
	if pool.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.MaxLifetime)
	}
}

// DB exposes the GORM handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Dialect names the active relational backend.
func (s *Store) Dialect() string {
	return s.dialect
}

// TransactionManager returns the unit-of-work entry point bound to this store.
func (s *Store) TransactionManager() repository.TransactionManager {
	return NewTransactionManager(s.db, s.acquireTimeout)
}

// Ping checks that a connection can still be obtained within the acquisition timeout.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
	defer cancel()

	return errors.WithStack(s.sqlDB.PingContext(pingCtx))
}

// Close stops the pool monitor and closes every connection.
func (s *Store) Close(_ context.Context) error {
	if s.stopMonitor != nil {
		s.stopMonitor()
	}

	return errors.WithStack(s.sqlDB.Close())
}

// topUpIdle opens connections until at least minIdle exist, so the pool keeps its floor
// after idle eviction. Borrowed connections are held together because sql.DB hands an idle
// connection back out before it dials a new one.
func (s *Store) topUpIdle(ctx context.Context) error {
	floor := s.minIdle
	if s.maxOpen > 0 {
		floor = min(floor, s.maxOpen)
	}
	if s.sqlDB.Stats().OpenConnections >= floor {
		return nil
	}

	conns := make([]*sql.Conn, 0, floor)
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	for len(conns) < floor && s.sqlDB.Stats().OpenConnections < floor {
		acquireCtx, cancel := context.WithTimeout(ctx, s.acquireTimeout)
		conn, err := s.sqlDB.Conn(acquireCtx)
		cancel()
		if err != nil {
			return errors.Wrapf(err, "failed to open idle %s connection", s.dialect)
		}
		conns = append(conns, conn)
	}

	return nil
}

func (s *Store) monitorDBPool(ctx context.Context, interval time.Duration) {
	if s.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := s.sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := s.sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.String("dialect", s.dialect),
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta/time.Duration(waitDelta) >= dbPoolWarnDurationThreshold {
					s.logger.LogAttrs(ctx, slog.LevelWarn, "SQL pool wait detected", attrs...)
				} else {
					s.logger.LogAttrs(ctx, slog.LevelDebug, "SQL pool wait observed", attrs...)
				}
			}

			if err := s.topUpIdle(ctx); err != nil && ctx.Err() == nil {
				s.logger.LogAttrs(ctx, slog.LevelWarn, "SQL pool idle top-up failed",
					slog.String("dialect", s.dialect),
					slog.Any("error", err),
				)
			}

			prev = cur
		}
	}
}
