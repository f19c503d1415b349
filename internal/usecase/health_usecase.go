package usecase

import (
	"context"
	"time"
)

// HealthStatus reports the active backend and whether it answered.
type HealthStatus struct {
	DatabaseType string
	Connected    bool
	CheckedAt    time.Time
}

// HealthUsecase probes the storage context for the health endpoint.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
