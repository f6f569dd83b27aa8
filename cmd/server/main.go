package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant-admin/internal/config"
	"restaurant-admin/internal/database"
	"restaurant-admin/internal/handlers"
	"restaurant-admin/internal/middleware"
	"restaurant-admin/internal/repositories"
	"restaurant-admin/internal/router"
	"restaurant-admin/internal/services"
	"restaurant-admin/internal/storage"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}

	if err := run(logger); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	adminLogger := services.NewAdminLogger(logger)

	customerRepo := repositories.NewCustomerRepository(db.DB)
	instructionRepo := repositories.NewInstructionRepository(db.DB)
	customerInfoRepo := repositories.NewCustomerInfoRepository(db.DB)
	adminUserRepo := repositories.NewAdminUserRepository(db.DB)

	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(
		adminUserRepo,
		services.NewPasswordService(cfg.Security.BCryptCost),
		tokenService,
		adminLogger,
		metrics,
		cfg.Security.MaxFailedAttempts,
		cfg.Security.LockoutDuration,
		logger,
	)
	companyService := services.NewCompanyService(customerRepo, adminLogger, metrics, cfg.Search.PageSize)
	instructionService := services.NewInstructionService(instructionRepo, customerRepo, adminLogger, metrics)
	customerInfoService := services.NewCustomerInfoService(customerInfoRepo, customerRepo, adminLogger, metrics)

	resolver := storage.NewResolver(storage.NewFileStore(cfg.Storage.LogoRoot))

	loginLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	defer loginLimiter.Stop()

	e := router.New(cfg, &router.Dependencies{
		Auth:         handlers.NewAuthHandler(authService, adminLogger),
		Restaurant:   handlers.NewRestaurantHandler(companyService, resolver, adminLogger, cfg.Storage.MaxUploadMemory),
		Instruction:  handlers.NewInstructionHandler(instructionService, adminLogger),
		CustomerInfo: handlers.NewCustomerInfoHandler(customerInfoService, adminLogger),
		Health:       handlers.NewHealthCheckHandler(db),
		TokenService: tokenService,
		LoginLimiter: loginLimiter,
		Gatherer:     prometheus.DefaultGatherer,
		Logger:       logger,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server",
			"address", addr,
			"environment", cfg.Server.Environment,
			"auth_required", cfg.Security.RequireAuth,
			"logo_root", cfg.Storage.LogoRoot,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server stopped")
	return nil
}
