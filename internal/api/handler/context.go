package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/api/middleware"
	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// ctxClaims extracts the token claims injected by the Auth middleware. A
// missing or zero subject means the route was mounted without Auth.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(ports.TokenClaims)
	if !ok || claims.UserID == 0 || claims.Role == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxActor is the caller as seen by services and the activity log.
func ctxActor(c echo.Context) (domain.Actor, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return domain.Actor{}, err
	}
	return domain.Actor{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}
