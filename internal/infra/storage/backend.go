package storage

import (
	"strings"

	"counterhub/internal/errors"
)

// Backend names one of the supported storage engines.
type Backend string

const (
	BackendMongoDB  Backend = "mongodb"
	BackendMySQL    Backend = "mysql"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ErrUnsupportedBackend is returned for any selector outside the four known backends.
var ErrUnsupportedBackend = errors.New("unsupported database type")

// ParseBackend accepts the selector case-insensitively.
func ParseBackend(raw string) (Backend, error) {
	backend := Backend(strings.ToLower(strings.TrimSpace(raw)))
	switch backend {
	case BackendMongoDB, BackendMySQL, BackendPostgres, BackendSQLite:
		return backend, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedBackend, "%q", raw)
	}
}

// IsSQL reports whether the backend is served by the relational store.
func (b Backend) IsSQL() bool {
	switch b {
	case BackendMySQL, BackendPostgres, BackendSQLite:
		return true
	default:
		return false
	}
}

// IsDocumentStore reports whether the backend is MongoDB.
func (b Backend) IsDocumentStore() bool {
	return b == BackendMongoDB
}

func (b Backend) String() string {
	return string(b)
}
