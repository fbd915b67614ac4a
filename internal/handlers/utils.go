package handlers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"inventory-backend/internal/models"
	"inventory-backend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the request carries no usable identity
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getIdentityFromContext returns the caller identity resolved by the
// authentication gate, or the zero identity for anonymous requests
func getIdentityFromContext(c echo.Context) models.RequestIdentity {
	identity, ok := c.Get(models.IdentityContextKey).(models.RequestIdentity)
	if !ok {
		return models.RequestIdentity{}
	}
	return identity
}

// getUserIDFromContext extracts the authenticated user's ID.
// Returns ErrUnauthorized when no identity is attached or the subject is
// not a valid UUID.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	identity := getIdentityFromContext(c)
	if identity.IsZero() {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, err := uuid.Parse(identity.Subject)
	if err != nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// isInvalidPrice reports whether err stems from an unparseable price value.
// The services wrap the parse failure, so plain equality is not enough.
func isInvalidPrice(err error) bool {
	return stderrors.Is(err, services.ErrInvalidPrice)
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
