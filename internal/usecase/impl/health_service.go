package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "counterhub/internal/delivery/context"
	"counterhub/internal/domain/service"
	"counterhub/internal/infra/storage"
	"counterhub/internal/usecase"

	"go.uber.org/fx"
)

// healthPingTimeout bounds the storage ping behind the health endpoint.
const healthPingTimeout = 2 * time.Second

// StorageProbe is the part of the storage context the health check reads.
type StorageProbe interface {
	Type() storage.Backend
	Connected() bool
	Ping(ctx context.Context) error
}

type healthService struct {
	probe  StorageProbe
	clock  service.Clock
	logger *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	Probe  StorageProbe
	Clock  service.Clock `optional:"true"`
	Logger *slog.Logger
}

func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		probe:  params.Probe,
		clock:  clockOrSystem(params.Clock),
		logger: params.Logger,
	}
}

// Check never fails; an unreachable backend is reported as disconnected.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthStatus {
	status := &usecase.HealthStatus{
		DatabaseType: srv.probe.Type().String(),
		CheckedAt:    srv.clock.Now(),
	}

	if !srv.probe.Connected() {
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.probe.Ping(pingCtx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Storage ping failed",
			slog.String("databaseType", status.DatabaseType),
			slog.Any("error", err),
		)

		return status
	}
	status.Connected = true

	return status
}
