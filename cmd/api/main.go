package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhiraj/finpal/finpal-backend/internal/config"
	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/abhiraj/finpal/finpal-backend/internal/handler"
	"github.com/abhiraj/finpal/finpal-backend/internal/ledger"
	"github.com/abhiraj/finpal/finpal-backend/internal/middleware"
	"github.com/abhiraj/finpal/finpal-backend/internal/repository/postgres"
	"github.com/abhiraj/finpal/finpal-backend/internal/repository/sqlite"
	"github.com/abhiraj/finpal/finpal-backend/internal/repository/storage"
	"github.com/abhiraj/finpal/finpal-backend/internal/service"
	"github.com/abhiraj/finpal/finpal-backend/internal/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Open the snapshot store: PostgreSQL when configured, local SQLite
	// otherwise
	snapshots, cleanup, err := openSnapshotStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot store")
	}
	defer cleanup()

	// Open the ledger (seeds starter data on first run)
	store, err := ledger.Open(snapshots)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open ledger")
	}

	// Initialize services
	metricsService := service.NewMetricsService()
	expenseService := service.NewExpenseService(store)
	goalService := service.NewGoalService(store)
	billingService := service.NewBillingService(store)
	debtService := service.NewDebtService(store)
	challengeService := service.NewChallengeService(store, metricsService)
	settingsService := service.NewSettingsService(store)
	assistantService := service.NewAssistantService(store, metricsService, cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	exportService := service.NewExportService(store)

	// Initialize backup storage if configured
	var backups storage.BackupRepository
	if cfg.S3.Enabled() {
		s3Repo, err := storage.NewS3BackupRepository(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize backup storage")
		}
		backups = s3Repo
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Backup storage enabled")
	}

	// Initialize WebSocket hub and wire it to ledger commits
	hub := websocket.NewHub()
	publisher := websocket.NewPublisher(hub, store)
	unsubscribe := publisher.Start()
	defer unsubscribe()

	// Initialize handlers
	dataHandler := handler.NewDataHandler(store)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	goalHandler := handler.NewGoalHandler(goalService)
	billingHandler := handler.NewBillingHandler(billingService)
	debtHandler := handler.NewDebtHandler(debtService)
	challengeHandler := handler.NewChallengeHandler(challengeService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	dashboardHandler := handler.NewDashboardHandler(store, metricsService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	exportHandler := handler.NewExportHandler(exportService, store, backups)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)

	// Rate limiter
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, rateLimiter, dataHandler, expenseHandler, goalHandler, billingHandler, debtHandler, challengeHandler, settingsHandler, dashboardHandler, assistantHandler, exportHandler, wsHandler)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openSnapshotStore picks the persistence backend from configuration and
// returns the store plus a cleanup function.
func openSnapshotStore(cfg *config.Config) (domain.SnapshotStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}

		repo, err := postgres.NewSnapshotRepository(context.Background(), pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		log.Info().Msg("Using PostgreSQL snapshot store")
		return repo, pool.Close, nil
	}

	repo, err := sqlite.NewSnapshotRepository(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite snapshot store")
	return repo, func() { _ = repo.Close() }, nil
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
