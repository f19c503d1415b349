// Package mongostore is the document-store implementation of the persistence layer.
package mongostore

import (
	"context"
	"log/slog"
	"time"

	"counterhub/config"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	usersCollection          = "users"
	activitiesCollection     = "activities"
	dailySummariesCollection = "dailysummaries"
)

// Store owns the MongoDB client for the process lifetime.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
	pingTimeout  time.Duration
	logger       *slog.Logger
}

// Open connects, verifies the primary is reachable and ensures validators and indexes exist.
// Any failure is fatal to startup.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	mongoCfg := cfg.Database.MongoDB
	pool := cfg.Database.Pool

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetMaxConnIdleTime(pool.IdleTimeout).
		SetServerSelectionTimeout(pool.AcquireTimeout).
		SetConnectTimeout(pool.AcquireTimeout)
	if cfg.Env.ServiceName != "" {
		opts.SetAppName(cfg.Env.ServiceName)
	}
	if pool.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(pool.MaxOpenConns))
	}
	if pool.MinIdleConns > 0 {
		opts.SetMinPoolSize(uint64(pool.MinIdleConns))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	store := &Store{
		client:       client,
		db:           client.Database(mongoCfg.Database),
		transactions: mongoCfg.Transactions,
		pingTimeout:  pool.AcquireTimeout,
		logger:       logger,
	}

	if err := store.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	if err := EnsureSchema(ctx, store.db, logger); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, err
	}

	logger.Info("MongoDB connected",
		slog.String("database", mongoCfg.Database),
		slog.Bool("transactions", mongoCfg.Transactions),
	)

	return store, nil
}

// Client exposes the driver client.
func (s *Store) Client() *mongo.Client {
	return s.client
}

// Database exposes the selected database.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// TransactionManager returns the unit-of-work entry point bound to this store.
func (s *Store) TransactionManager() repository.TransactionManager {
	return NewTransactionManager(s.client, s.db, s.transactions, s.logger)
}

func (s *Store) Ping(ctx context.Context) error {
	if s.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.pingTimeout)
		defer cancel()
	}

	return errors.WithStack(s.client.Ping(ctx, readpref.Primary()))
}

func (s *Store) Close(ctx context.Context) error {
	return errors.WithStack(s.client.Disconnect(ctx))
}
