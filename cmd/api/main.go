package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/recruiteriq/auth-service/internal/api"
	apimiddleware "github.com/recruiteriq/auth-service/internal/api/middleware"
	"github.com/recruiteriq/auth-service/internal/core/service"
	"github.com/recruiteriq/auth-service/internal/infrastructure/config"
	"github.com/recruiteriq/auth-service/internal/infrastructure/db/postgres"
	"github.com/recruiteriq/auth-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.DSN()})
	if err != nil {
		logg.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("schema migration failed")
	}

	users := postgres.NewUserRepository(db)
	tokens := service.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	authService := service.NewAuthService(users, tokens)

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logg.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
	} else {
		created, err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			logg.Fatal().Err(err).Msg("admin bootstrap failed")
		}
		if created {
			logg.Info().Str("email", cfg.Admin.Email).Msg("admin user created")
		} else {
			logg.Info().Str("email", cfg.Admin.Email).Msg("admin user already exists")
		}
	}

	e := api.NewRouter(db, authService, tokens, users, apimiddleware.Mode(cfg.AuthMode), logg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("auth_mode", cfg.AuthMode).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("shutdown failed")
	}
}
