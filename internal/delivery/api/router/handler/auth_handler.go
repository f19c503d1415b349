// Package handler contains the HTTP handlers for the application.
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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login, admin login and logout.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest identifies the user. An unknown (appId, mobile) pair registers a new user.
type LoginRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Mobile string `json:"mobile" validate:"required,max=32"`
	AppID  string `json:"appId" validate:"omitempty,max=64"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	User      *UserResponse `json:"user"`
	IsNewUser bool          `json:"isNewUser"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
	Admin struct {
		Username string `json:"username"`
		IsAdmin  bool   `json:"isAdmin"`
	} `json:"admin"`
}

// Login handles consumer login and first-time registration.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Name:   req.Name,
		Mobile: req.Mobile,
		AppID:  req.AppID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     output.Token,
		User:      toUserResponse(output.User),
		IsNewUser: output.IsNewUser,
	})
}

// AdminLogin handles the administrator login.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.authUC.AdminLogin(c.Request().Context(), &usecase.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var resp AdminLoginResponse
	resp.Token = output.Token
	resp.Admin.Username = output.Username
	resp.Admin.IsAdmin = true

	return response.Success(c, http.StatusOK, resp)
}

// Logout records the logout. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	scope, ok := middleware.GetScope(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user scope in token")
	}

	if err := h.authUC.Logout(c.Request().Context(), scope); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
