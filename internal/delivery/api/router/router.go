// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"counterhub/config"
	"counterhub/internal/delivery/api/middleware"
	"counterhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ActivityHandler *handler.ActivityHandler
	AdminHandler    *handler.AdminHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	activityHandler *handler.ActivityHandler
	adminHandler    *handler.AdminHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		activityHandler: params.ActivityHandler,
		adminHandler:    params.AdminHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", r.healthHandler.Health)

	// Login endpoints are throttled per client IP.
	authGroup := api.Group("/auth")
	{
		limited := authGroup.Group("", r.loginRateLimiter())
		limited.POST("/login", r.authHandler.Login)
		limited.POST("/admin/login", r.authHandler.AdminLogin)

		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
	}

	usersGroup := api.Group("/users", r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
	{
		usersGroup.GET("/profile", r.userHandler.GetProfile)
		usersGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	activitiesGroup := api.Group("/activities", r.authMiddleware.Authenticate, r.authMiddleware.RequireUser)
	{
		activitiesGroup.POST("/add-count", r.activityHandler.AddCount)
		activitiesGroup.GET("/my-activities", r.activityHandler.MyActivities)
		activitiesGroup.GET("/daily-summary", r.activityHandler.DailySummary)
	}

	adminGroup := api.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:userId", r.adminHandler.GetUser)
		adminGroup.GET("/activities", r.adminHandler.ListActivities)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/apps", r.adminHandler.ListApps)
	}
}

// loginRateLimiter keeps a token bucket per client IP. A zero rate disables it.
func (r *router) loginRateLimiter() echo.MiddlewareFunc {
	limits := r.config.HTTP.RateLimit
	if limits.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limits.RequestsPerSecond),
		Burst: limits.Burst,
	})

	return echomiddleware.RateLimiter(store)
}
