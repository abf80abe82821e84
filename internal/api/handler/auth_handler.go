package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/recruiteriq/auth-service/internal/api/metrics"
	"github.com/recruiteriq/auth-service/internal/api/middleware"
	"github.com/recruiteriq/auth-service/internal/core/domain"
	"github.com/recruiteriq/auth-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	mode        middleware.Mode
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, mode middleware.Mode, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, mode: mode, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type registerResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

// Login authenticates a user and hands back the session token. In
// cookie mode the token is additionally set as the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if h.mode == middleware.ModeCookie {
		c.SetCookie(h.sessionCookie(token, time.Now().Add(h.tokenTTL)))
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout expires the session cookie. Tokens are stateless, so a copy
// captured before logout stays valid until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.mode == middleware.ModeCookie {
		c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Register creates a new user account. The route is admin-gated by
// Authenticate + RequireRole upstream.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidRole),
			errors.Is(err, domain.ErrUserExists),
			errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: user, Message: "user created successfully"})
}

// Home echoes the identity resolved by the Access Guard.
//
// @Summary      Authenticated home
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /home [get]
func (h *AuthHandler) Home(c echo.Context) error {
	email, role, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "authenticated",
		"email":   email,
		"role":    role,
	})
}

func (h *AuthHandler) sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
