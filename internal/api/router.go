package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/recruiteriq/auth-service/internal/api/handler"
	"github.com/recruiteriq/auth-service/internal/api/middleware"
	"github.com/recruiteriq/auth-service/internal/core/domain"
	"github.com/recruiteriq/auth-service/internal/core/ports"
	"github.com/recruiteriq/auth-service/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Dependencies are constructed by the caller and passed in
// explicitly.
func NewRouter(db *sql.DB, authService ports.AuthService, tokens *service.TokenService, users ports.UserRepository, mode middleware.Mode, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recruiteriq"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(authService, mode, tokens.TTL())
	authn := middleware.Authenticate(tokens, users, mode)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/register", authHandler.Register, authn, adminOnly)
	e.GET("/home", authHandler.Home, authn)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
