package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recruiteriq/auth-service/internal/api/metrics"
	"github.com/recruiteriq/auth-service/internal/core/domain"
	"github.com/recruiteriq/auth-service/internal/core/ports"
	"github.com/recruiteriq/auth-service/internal/core/service"
)

// Mode selects how the session token travels between client and server.
// A deployment runs exactly one mode, chosen at startup.
type Mode string

const (
	ModeBearer Mode = "bearer"
	ModeCookie Mode = "cookie"
)

// CookieName is the session cookie read and written in cookie mode.
const CookieName = "access_token"

// Authenticate validates the session token and injects the resolved
// identity into context. Regardless of transport the subject is
// re-resolved against the credential store, so downstream handlers see
// the currently stored role, not the role frozen into the token at
// issuance.
func Authenticate(tokens *service.TokenService, users ports.UserRepository, mode Mode) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c, mode)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", user.ID)
			c.Set("email", user.Email)
			c.Set("role", string(user.Role))

			return next(c)
		}
	}
}

func extractToken(c echo.Context, mode Mode) (string, error) {
	if mode == ModeCookie {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			return "", domain.ErrUnauthenticated
		}
		return cookie.Value, nil
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrUnauthenticated
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", domain.ErrUnauthenticated
	}
	return parts[1], nil
}
