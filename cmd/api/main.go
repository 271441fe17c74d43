// @title Datadesk API
// @version 1.0
// @description CSV-driven data collection: templates, coder responses and admin review.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/api/handlers"
	"github.com/linskybing/datadesk/internal/api/middleware"
	"github.com/linskybing/datadesk/internal/api/routes"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/config/db"
	"github.com/linskybing/datadesk/internal/cron"
	"github.com/linskybing/datadesk/internal/events"
	"github.com/linskybing/datadesk/internal/notify"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/internal/storage"
	"github.com/linskybing/datadesk/pkg/logger"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	appLog, err := logger.New(config.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	infra := application.Infra{
		Log:      appLog,
		Notifier: notify.New(),
	}

	if config.MinioEnabled {
		store, err := storage.NewMinioStore(ctx, appLog)
		if err != nil {
			appLog.Fatal("failed to connect to MinIO", "error", err)
		}
		infra.Store = store
	} else {
		appLog.Info("template archiving disabled")
	}

	if config.RedisAddr != "" {
		bus, err := events.NewRedisBus(config.RedisAddr, config.RedisChannel, appLog)
		if err != nil {
			appLog.Fatal("failed to connect to redis", "error", err)
		}
		if err := bus.StartForwarder(ctx); err != nil {
			appLog.Fatal("failed to subscribe to redis", "error", err)
		}
		infra.Bus = bus
	} else {
		infra.Bus = events.NewMemoryBus()
	}
	defer infra.Bus.Close()

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, infra)

	if err := services.Auth.EnsureBootstrapAdmin(ctx); err != nil {
		appLog.Fatal("failed to create bootstrap admin", "error", err)
	}

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays, 24*time.Hour, appLog.With("task", "audit_cleanup"))

	sqlDB, err := db.DB.DB()
	if err != nil {
		appLog.Fatal("failed to get sql handle", "error", err)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware(appLog.With("component", "http")))

	routes.RegisterRoutes(router, handlers.New(services, repos, sqlDB.PingContext, appLog))

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		appLog.Info("shutdown signal")
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLog.Error("server shutdown failed", "error", err)
		}
	}()

	appLog.Info("starting API server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLog.Fatal("failed to start", "error", err)
	}
}
