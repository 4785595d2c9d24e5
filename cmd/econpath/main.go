package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/econpath/internal/config"
	logpkg "github.com/kailas-cloud/econpath/internal/logger"
	"github.com/kailas-cloud/econpath/internal/metrics"
	catalogrepo "github.com/kailas-cloud/econpath/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/econpath/internal/transport/chi"
	assessmentuc "github.com/kailas-cloud/econpath/internal/usecase/assessment"
	cataloguc "github.com/kailas-cloud/econpath/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/econpath/internal/usecase/health"
	"github.com/kailas-cloud/econpath/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting econpath API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_dir", cfg.Catalog.Dir),
	)

	store, err := catalogrepo.New(catalogSource(cfg.Catalog), logger)
	if err != nil {
		logger.Fatal("Failed to load catalogs", zap.Error(err))
	}
	logger.Info("Catalogs loaded", zap.Int("count", len(store.Load())))

	metrics.RegisterEngineMetrics()

	catalogSvc := cataloguc.New(store)
	assessmentSvc := assessmentuc.New(store)
	healthSvc := healthuc.New().WithCheck("catalog", store)

	server := chiTransport.NewServer(catalogSvc, assessmentSvc, healthSvc, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           chiTransport.NewRouter(server, cfg.HTTP.AllowedOrigins),
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// catalogSource picks the override directory when configured, the embedded catalogs otherwise.
func catalogSource(cfg config.CatalogConfig) fs.FS {
	if cfg.Dir != "" {
		return os.DirFS(cfg.Dir)
	}
	return catalogrepo.Builtin()
}
