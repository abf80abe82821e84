package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// currentIdentity extracts the identity injected by the Authenticate
// middleware. An empty email means the guard never ran on this route —
// reject with 401 before touching any service.
func currentIdentity(c echo.Context) (email, role string, err error) {
	email, _ = c.Get("email").(string)
	if email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return email, role, nil
}
