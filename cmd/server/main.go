package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sudanscouts/community-backend/internal/config"
	"github.com/sudanscouts/community-backend/internal/database"
	"github.com/sudanscouts/community-backend/internal/dto"
	"github.com/sudanscouts/community-backend/internal/handlers"
	"github.com/sudanscouts/community-backend/internal/logging"
	"github.com/sudanscouts/community-backend/internal/metrics"
	"github.com/sudanscouts/community-backend/internal/middleware"
	"github.com/sudanscouts/community-backend/internal/routes"
	"github.com/sudanscouts/community-backend/internal/services"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.IsDevelopment())

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.Default().Handler(),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Services
	roleService := services.NewRoleService(database.DB)
	roleService.SeedFromConfig(cfg.AdminSeedEmail, cfg.AdminSeedRole)

	authService := services.NewAuthService(database.DB, cfg, roleService)
	scoutService := services.NewScoutService(database.DB)
	productService := services.NewProductService(database.DB)
	postService := services.NewPostService(database.DB)
	rosterService := services.NewRosterService(database.DB)
	checkoutService := services.NewCheckoutService(database.DB, cfg.WhatsAppNumber)

	uploadService, err := services.NewUploadService(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		slog.Error("upload dir init failed", "error", err)
		os.Exit(1)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	scoutHandler := handlers.NewScoutHandler(scoutService)
	productHandler := handlers.NewProductHandler(productService)
	postHandler := handlers.NewPostHandler(postService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	storeHandler := handlers.NewStoreHandler(checkoutService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app. Body limit leaves headroom over the 10MB upload cap.
	app := fiber.New(fiber.Config{
		BodyLimit:    12 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.LocaleMiddleware())
	app.Use(metrics.Middleware())

	app.Get("/metrics", metrics.Handler())

	// Uploaded media is served straight from disk.
	app.Static(cfg.UploadBaseURL, uploadService.Dir())

	routes.Setup(app, cfg, roleService,
		authHandler, healthHandler,
		scoutHandler, productHandler, postHandler,
		rosterHandler, storeHandler, uploadHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
