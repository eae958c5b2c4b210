package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/task-service/internal/config"
	handlers "github.com/sun1tar/task-service/internal/http"
	"github.com/sun1tar/task-service/internal/logger"
	"github.com/sun1tar/task-service/internal/middleware"
	"github.com/sun1tar/task-service/internal/repository"
	"github.com/sun1tar/task-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("tasks", "info").WithError(err).Fatal("failed to load config")
	}

	log := logger.Init("tasks", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("server failed")
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is canceled or the listener fails. A listener failure
// is returned after the server and the store are closed.
func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	repo, closeRepo, err := openRepository(cfg.DB)
	if err != nil {
		return fmt.Errorf("open task store (%s): %w", cfg.DB.Driver, err)
	}
	defer closeRepo()

	helper, err := service.NewTaskDatabaseHelper(repo, log)
	if err != nil {
		return fmt.Errorf("create database helper: %w", err)
	}
	taskService := service.NewTaskService(helper, service.NewTaskMapper(log), log)

	taskHandler := handlers.NewTaskHandler(taskService, log)
	mux := handlers.NewRouter(taskHandler)

	// request-id goes outermost so the request log carries it
	var handler http.Handler = mux
	handler = middleware.SecurityHeadersMiddleware(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.LoggingMiddleware(log)(handler)
	handler = middleware.RequestIDMiddleware(handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.TasksPort),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":   cfg.TasksPort,
			"driver": cfg.DB.Driver,
		}).Info("tasks service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if serveErr != nil {
		return serveErr
	}
	log.Info("server stopped")
	return nil
}

func openRepository(db config.DatabaseConfig) (repository.TaskRepository, func(), error) {
	switch db.Driver {
	case config.DriverPostgres:
		r, err := repository.NewPostgresTaskRepository(db.DSN())
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case config.DriverSQLite:
		r, err := repository.NewSQLiteTaskRepository(db.DSN())
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case config.DriverMemory:
		return repository.NewMemoryTaskRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %q", db.Driver)
	}
}
