package handler

import (
	"log/slog"
	"net/http"

	"counterhub/internal/delivery/api/response"
	"counterhub/internal/domain/repository"
	"counterhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the cross-tenant administrative views.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

type ListUsersQuery struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Search string `query:"search" validate:"omitempty,max=100"`
	AppID  string `query:"appId" validate:"omitempty,max=64"`
}

type ListActivitiesQuery struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Type   string `query:"type"`
	UserID string `query:"userId"`
	AppID  string `query:"appId" validate:"omitempty,max=64"`
}

type StatsQuery struct {
	AppID string `query:"appId" validate:"omitempty,max=64"`
}

type UserDetailResponse struct {
	User       *UserResponse           `json:"user"`
	Activities []*ActivityResponse     `json:"activities"`
	Summaries  []*DailySummaryResponse `json:"dailySummaries"`
}

type StatsResponse struct {
	AppID           string `json:"appId,omitempty"`
	TotalUsers      int64  `json:"totalUsers"`
	ActiveToday     int64  `json:"activeToday"`
	TodayTotalCount int64  `json:"todayTotalCount"`
}

type AppResponse struct {
	AppID     string `json:"appId"`
	Name      string `json:"name"`
	UserCount int64  `json:"userCount"`
}

// ListUsers lists users across tenants, most recently active first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var query ListUsersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	pagination := pageOrDefault(query.Page, query.Limit, repository.DefaultPageLimit)
	users, err := h.adminUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		AppID:  query.AppID,
		Search: query.Search,
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":      toUserResponses(users),
		"pagination": pagination,
	})
}

// GetUser returns one user with recent activities and summaries.
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "userId is required")
	}

	detail, err := h.adminUC.GetUserDetail(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserDetailResponse{
		User:       toUserResponse(detail.User),
		Activities: toActivityResponses(detail.Activities),
		Summaries:  toDailySummaryResponses(detail.Summaries),
	})
}

// ListActivities lists activities across tenants with their owners attached.
func (h *AdminHandler) ListActivities(c echo.Context) error {
	var query ListActivitiesQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	pagination := pageOrDefault(query.Page, query.Limit, usecase.DefaultAdminActivityLimit)
	activities, err := h.adminUC.ListActivities(c.Request().Context(), &usecase.ListActivitiesInput{
		AppID:  query.AppID,
		UserID: query.UserID,
		Kind:   query.Type,
		Page:   pagination.Page,
		Limit:  pagination.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"activities": toActivityResponses(activities),
		"pagination": pagination,
	})
}

// Stats aggregates one tenant, or all of them without appId.
func (h *AdminHandler) Stats(c echo.Context) error {
	var query StatsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	stats, err := h.adminUC.Stats(c.Request().Context(), query.AppID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StatsResponse{
		AppID:           stats.AppID,
		TotalUsers:      stats.TotalUsers,
		ActiveToday:     stats.ActiveToday,
		TodayTotalCount: stats.TodayTotalCount,
	})
}

// ListApps lists every application with its user count.
func (h *AdminHandler) ListApps(c echo.Context) error {
	apps, err := h.adminUC.ListApps(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]AppResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, AppResponse{AppID: app.AppID, Name: app.Name, UserCount: app.UserCount})
	}

	return response.Success(c, http.StatusOK, out)
}
