// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/openmall/catalog-backend/internal/config"
	"github.com/openmall/catalog-backend/internal/database"
	"github.com/openmall/catalog-backend/internal/datasource"
	"github.com/openmall/catalog-backend/internal/i18n"
	"github.com/openmall/catalog-backend/internal/router"
	"github.com/openmall/catalog-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.LocalesPath); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	// Pick the catalog data source
	source, cleanup, err := buildDataSource(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize data source: ", err)
	}
	defer cleanup()

	// Seed the catalog engine
	catalogService := services.NewCatalogService(source, cfg)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogService.Load(loadCtx); err != nil {
		loadCancel()
		logrus.Fatal("Failed to load catalog: ", err)
	}
	loadCancel()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(catalogService, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

func setupLogging(cfg *config.Config) {
	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logrus.SetLevel(level)
	}
}

func buildDataSource(cfg *config.Config) (datasource.DataSource, func(), error) {
	switch cfg.Catalog.DataSource {
	case "postgres":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return datasource.NewPostgresSource(db), func() { database.Close(db) }, nil
	default:
		latency := time.Duration(cfg.Catalog.SeedLatencyMs) * time.Millisecond
		return datasource.NewMemorySource(datasource.Fixtures(), latency), func() {}, nil
	}
}
