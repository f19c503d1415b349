package middleware

import (
	"log/slog"
	"strings"

	"counterhub/internal/delivery/api/response"
	deliverycontext "counterhub/internal/delivery/context"
	"counterhub/internal/domain/service"
	"counterhub/internal/domain/tenant"

	"github.com/labstack/echo/v4"
)

const (
	claimsKey = "claims"
	scopeKey  = "scope"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Access token required")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Forbidden(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(claimsKey, claims)

		return next(c)
	}
}

// RequireUser admits user tokens only and binds the caller's tenant scope.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := GetClaims(c)
		if !ok || claims.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "User token required")
		}

		scope, err := tenant.NewScope(claims.UserID, claims.AppID)
		if err != nil {
			return response.Forbidden(c, "INVALID_TOKEN", "Token carries no valid user scope")
		}

		c.Set(scopeKey, scope)
		deliverycontext.AnnotateLogger(c, slog.String("user_id", scope.UserID), slog.String("app_id", scope.AppID))

		return next(c)
	}
}

// RequireAdmin admits admin tokens only.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := GetClaims(c)
		if !ok || !claims.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		deliverycontext.AnnotateLogger(c, slog.String("admin", claims.Username))

		return next(c)
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetScope returns the tenant scope stored by RequireUser.
func GetScope(c echo.Context) (tenant.Scope, bool) {
	scope, ok := c.Get(scopeKey).(tenant.Scope)

	return scope, ok
}
