package middleware

import (
	"inventory-backend/internal/errors"
	"inventory-backend/internal/handlers"
	"inventory-backend/internal/models"
	"inventory-backend/internal/services"

	"github.com/labstack/echo/v4"
)

// Authenticate resolves the caller's identity from the Authorization header
// and attaches it to the request context. It runs once per request, before
// any handler, and never rejects: a missing, malformed, expired or otherwise
// invalid token simply means no identity is attached. Enforcement is the job
// of RequireAuth / RequireRole further down the chain, so public and
// protected routes share one identity resolution pass.
func Authenticate(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return next(c)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				// A present-but-invalid token is treated exactly like an
				// absent one
				return next(c)
			}

			c.Set(models.IdentityContextKey, claims.Identity())

			return next(c)
		}
	}
}

// IdentityFromContext returns the identity attached by Authenticate, or the
// zero identity when the request carried no valid token
func IdentityFromContext(c echo.Context) models.RequestIdentity {
	identity, ok := c.Get(models.IdentityContextKey).(models.RequestIdentity)
	if !ok {
		return models.RequestIdentity{}
	}
	return identity
}

// RequireAuth rejects requests that carry no identity
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFromContext(c).IsZero() {
				return handlers.SendError(c, errors.AuthMissingToken)
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose identity does not hold one of the
// given roles. Requests with no identity at all are rejected as
// unauthenticated rather than forbidden.
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFromContext(c)
			if identity.IsZero() {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			if !identity.HasRole(requiredRoles...) {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			return next(c)
		}
	}
}

// RequireAdmin is a convenience middleware that requires the admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
