// Command api runs the teachback HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"teachback-backend/infrastructure/di"
)

func main() {
	container, err := di.InitializeContainer()
	if err != nil {
		// Logger may not exist yet
		os.Stderr.WriteString("failed to initialize: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := container.Logger
	defer logger.Sync()

	server := &http.Server{
		Addr:    container.Config.ServerAddr,
		Handler: container.Router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", container.Config.ServerAddr),
			zap.String("environment", container.Config.Environment),
			zap.String("session_store", container.Config.SessionStore),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), container.Config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
