package handler

import (
	"log/slog"
	"net/http"

	"counterhub/internal/delivery/api/middleware"
	"counterhub/internal/delivery/api/response"
	"counterhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// UserHandler serves the caller's own profile.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest lists the editable fields. Omitted fields are left unchanged;
// an empty email or pin clears it.
type UpdateProfileRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Email  *string `json:"email" validate:"omitempty,email,max=254"`
	Mobile *string `json:"mobile" validate:"omitempty,max=32"`
	Pin    *string `json:"pin" validate:"omitempty,numeric,min=4,max=12"`
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile changes the authenticated user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), scope, &usecase.UpdateProfileInput{
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Pin:    req.Pin,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
