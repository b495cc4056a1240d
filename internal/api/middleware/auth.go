package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/agencypulse/kpi-dashboard/internal/core/ports"
)

// Context keys set by Auth.
const (
	ClaimsKey   = "claims"
	UsernameKey = "username"
	RoleKey     = "role"
)

// Auth validates the bearer JWT, rejects revoked tokens and injects the
// claims into the echo context. revoker may be nil to skip revocation checks.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tc, ok := toTokenClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			if revoker != nil && tc.TokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), tc.TokenID)
				if err != nil {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "token check unavailable").SetInternal(err)
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set(ClaimsKey, tc)
			c.Set(UsernameKey, tc.Username)
			c.Set(RoleKey, tc.Role)

			return next(c)
		}
	}
}

func toTokenClaims(claims jwt.MapClaims) (ports.TokenClaims, bool) {
	sub, err := claims.GetSubject()
	if err != nil {
		return ports.TokenClaims{}, false
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return ports.TokenClaims{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ports.TokenClaims{}, false
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	if role == "" {
		return ports.TokenClaims{}, false
	}

	return ports.TokenClaims{
		UserID:    userID,
		Username:  username,
		Role:      role,
		TokenID:   jti,
		ExpiresAt: exp.Time,
	}, true
}
