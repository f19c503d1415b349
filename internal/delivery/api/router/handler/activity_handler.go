package handler

import (
	"log/slog"
	"net/http"

	"counterhub/internal/delivery/api/middleware"
	"counterhub/internal/delivery/api/response"
	"counterhub/internal/domain/repository"
	"counterhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	CounterUC usecase.CounterUsecase
	Logger    *slog.Logger
}

// ActivityHandler serves the counter and the caller's history.
type ActivityHandler struct {
	counterUC usecase.CounterUsecase
	logger    *slog.Logger
}

func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		counterUC: params.CounterUC,
		logger:    params.Logger,
	}
}

// AddCountRequest carries the increment. A missing count means one.
type AddCountRequest struct {
	Count *int64 `json:"count" validate:"omitnil,min=1,max=100000"`
}

type AddCountResponse struct {
	TotalCount   int64                 `json:"totalCount"`
	DailySummary *DailySummaryResponse `json:"dailySummary"`
}

type MyActivitiesQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
	Page  int `query:"page" validate:"omitempty,min=1"`
}

type DailySummaryQuery struct {
	Days int `query:"days" validate:"omitempty,min=1,max=366"`
}

// AddCount adds to the caller's running total.
func (h *ActivityHandler) AddCount(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	var req AddCountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid count input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	delta := int64(1)
	if req.Count != nil {
		delta = *req.Count
	}

	output, err := h.counterUC.AddCount(c.Request().Context(), scope, delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AddCountResponse{
		TotalCount:   output.TotalCount,
		DailySummary: toDailySummaryResponse(output.Summary),
	})
}

// MyActivities pages through the caller's activities, newest first.
func (h *ActivityHandler) MyActivities(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	var query MyActivitiesQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	pagination := pageOrDefault(query.Page, query.Limit, repository.DefaultPageLimit)
	activities, err := h.counterUC.MyActivities(c.Request().Context(), scope,
		repository.PageFromNumber(pagination.Page, pagination.Limit))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"activities": toActivityResponses(activities),
		"pagination": pagination,
	})
}

// DailySummary returns the caller's most recent daily summaries.
func (h *ActivityHandler) DailySummary(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	var query DailySummaryQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	summaries, err := h.counterUC.DailySummaries(c.Request().Context(), scope, query.Days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDailySummaryResponses(summaries))
}
