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

	"task-manager/internal/config"
	"task-manager/internal/httpapi"
	"task-manager/internal/observability/jsonlog"
	"task-manager/internal/store/memorystore"
	"task-manager/internal/store/sqlstore"
	"task-manager/internal/task"
)

type taskStore interface {
	task.Repository
	httpapi.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := httpapi.Options{RequestTimeout: cfg.RequestTimeout}
	var logger httpapi.Logger
	if cfg.LogFormat == config.LogJSON {
		opts.JSONLogger = jsonlog.New(os.Stdout)
		logger = opts.JSONLogger
	} else {
		opts.TextLogger = log.Default()
		logger = opts.TextLogger
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	st, closeStore, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()
	logger.Printf("store ready: driver=%s", cfg.DBDriver)

	svc := task.NewService(st)
	handler := httpapi.Handler(httpapi.NewServer(svc, st, logger), opts)

	// Root context cancelled on SIGINT/SIGTERM
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-rootCtx.Done():
		logger.Printf("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Printf("server: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("http shutdown error: %v", err)
	}
	logger.Printf("bye")
}

func openStore(ctx context.Context, cfg config.Config) (taskStore, func() error, error) {
	if cfg.DBDriver == config.DriverMemory {
		return memorystore.NewTaskStore(), func() error { return nil }, nil
	}

	st, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	return st, st.Close, nil
}
