// Package storage selects the configured backend at startup and hands the rest of the
// process one storage context to reach it through.
package storage

import (
	"context"
	"log/slog"
	"sync/atomic"

	"counterhub/config"
	"counterhub/internal/domain/lifecycle"
	"counterhub/internal/domain/repository"
	"counterhub/internal/errors"
	"counterhub/internal/infra/persistence/mongostore"
	"counterhub/internal/infra/persistence/sqlstore"

	"go.uber.org/fx"
)

// store is what every backend implementation exposes to the context.
type store interface {
	TransactionManager() repository.TransactionManager
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Connection describes the live backend. Handle is *gorm.DB for relational backends and
// *mongo.Database for MongoDB.
type Connection struct {
	Backend Backend
	Handle  any
}

// Context is the single owner of the active backend connection.
type Context struct {
	backend   Backend
	store     store
	handle    any
	connected atomic.Bool
	logger    *slog.Logger
}

// Connect dispatches on database.type, connects, pings and synchronises the schema.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Context, error) {
	backend, err := ParseBackend(cfg.Database.Type)
	if err != nil {
		return nil, err
	}

	storageCtx := &Context{backend: backend, logger: logger}

	switch {
	case backend.IsSQL():
		sqlStore, err := sqlstore.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		storageCtx.store = sqlStore
		storageCtx.handle = sqlStore.DB()
	case backend.IsDocumentStore():
		mongoStore, err := mongostore.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		storageCtx.store = mongoStore
		storageCtx.handle = mongoStore.Database()
	}

	storageCtx.connected.Store(true)
	logger.Info("Storage connected", slog.String("backend", backend.String()))

	return storageCtx, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects while the dependency graph is built so the schema is in place before any
// delivery starts, and closes the connection on stop.
func New(params Params) (*Context, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	storageCtx, err := Connect(ctx, params.Config, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect storage")
	}

	params.Append(fx.StopHook(storageCtx.Close))

	return storageCtx, nil
}

func (c *Context) Type() Backend {
	return c.backend
}

func (c *Context) Connection() Connection {
	return Connection{Backend: c.backend, Handle: c.handle}
}

func (c *Context) IsSQL() bool {
	return c.backend.IsSQL()
}

func (c *Context) IsDocumentStore() bool {
	return c.backend.IsDocumentStore()
}

// Connected reports whether the context holds an open connection.
func (c *Context) Connected() bool {
	return c.connected.Load()
}

func (c *Context) TransactionManager() repository.TransactionManager {
	return c.store.TransactionManager()
}

// Ping checks the backend is reachable right now.
func (c *Context) Ping(ctx context.Context) error {
	if !c.Connected() {
		return errors.New("storage is closed")
	}

	return c.store.Ping(ctx)
}

// Close is idempotent.
func (c *Context) Close(ctx context.Context) error {
	if !c.connected.CompareAndSwap(true, false) {
		return nil
	}
	c.logger.Info("Closing storage", slog.String("backend", c.backend.String()))

	return c.store.Close(ctx)
}
