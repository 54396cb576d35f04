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

	"go.uber.org/zap"

	"ticketing/internal/config"
	"ticketing/internal/handlers"
	"ticketing/internal/httpserver"
	"ticketing/internal/logger"
	"ticketing/internal/store"
)

const shutdownTimeout = 10 * time.Second

// main boots the service: config → logger → DB (retrying) → bootstrap →
// HTTP server. Startup failures are fatal; handler failures never are.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Waits out the database engine's cold start, creating the target
	// database on the way if it does not exist yet.
	st := store.New(cfg.DB, zl)
	defer st.Close()
	if err := st.Connect(ctx); err != nil {
		zl.Fatal("database connect", zap.Error(err))
	}

	// Schema and seed must be in place before the first request lands.
	if err := st.EnsureInitialized(ctx); err != nil {
		zl.Fatal("database bootstrap", zap.Error(err))
	}

	router := httpserver.NewRouter(cfg, handlers.New(st, zl), zl)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()
	zl.Info("server started", zap.String("addr", server.Addr))

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Error("server shutdown", zap.Error(err))
	}
}
