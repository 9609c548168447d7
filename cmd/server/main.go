package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/todolist/internal/adapter/httpserver"
	"github.com/pscheid92/todolist/internal/adapter/memory"
	"github.com/pscheid92/todolist/internal/adapter/metrics"
	"github.com/pscheid92/todolist/internal/app"
	"github.com/pscheid92/todolist/internal/platform/config"
	"github.com/pscheid92/todolist/internal/platform/logging"
	"github.com/pscheid92/todolist/internal/platform/version"
)

func runGracefulShutdown(cfg *config.Config, srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "address", cfg.Address(), "version", version.Version)

	reg := metrics.NewRegistry()

	store := memory.NewItemStore()
	appSvc := app.NewService(store, metrics.NewItemMetrics(reg), clock)

	healthChecks := []httpserver.HealthCheck{
		{Name: "item_store", Check: appSvc.CheckStore},
	}
	srv := httpserver.NewServer(cfg, appSvc, reg, clock, healthChecks)

	done := runGracefulShutdown(cfg, srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped")
}
