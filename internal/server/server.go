// Package server boots the application: config, database, storage, then
// the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajsingh19/wearhouse/config"
	"github.com/rajsingh19/wearhouse/internal/kernel"
	"github.com/rajsingh19/wearhouse/pkg/database"
	"github.com/rajsingh19/wearhouse/pkg/logger"
	"github.com/rajsingh19/wearhouse/pkg/storage"
)

// Start boots every subsystem and blocks serving HTTP until SIGINT or
// SIGTERM, then drains in-flight requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	storage.Connect()

	handler := kernel.NewHandler(database.DB, storage.Default())

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
