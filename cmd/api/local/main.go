//go:build !lambda
// +build !lambda

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

	"go.uber.org/zap"

	"github.com/cyphera/onramp-engine/internal/logger"
	"github.com/cyphera/onramp-engine/internal/server"
)

func main() {
	engine, closeFn, err := server.Bootstrap(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize onramp engine: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()
	defer logger.Sync()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", engine.Config.Port),
		Handler:           server.NewRouter(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", engine.Config.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}
