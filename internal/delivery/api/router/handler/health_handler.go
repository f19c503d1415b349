package handler

import (
	"net/http"
	"time"

	"counterhub/internal/delivery/api/response"
	"counterhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  struct {
		Type      string `json:"type"`
		Connected bool   `json:"connected"`
	} `json:"database"`
}

// Health reports the active backend. It answers 503 while the backend is unreachable.
func (h *HealthHandler) Health(c echo.Context) error {
	status := h.healthUC.Check(c.Request().Context())

	var resp HealthResponse
	resp.Status = "ok"
	resp.Timestamp = status.CheckedAt.UTC()
	resp.Database.Type = status.DatabaseType
	resp.Database.Connected = status.Connected

	code := http.StatusOK
	if !status.Connected {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return response.Success(c, code, resp)
}
