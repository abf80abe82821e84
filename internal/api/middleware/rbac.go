package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recruiteriq/auth-service/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after
// Authenticate: an empty role means the guard never ran, which is an
// authentication failure, not an authorization one.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
