package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
)

const (
	serverReadHeaderTimeout time.Duration = 20 * time.Second
	serverWriteTimeout      time.Duration = 1 * time.Minute
	serverIdleTimeout       time.Duration = 3 * time.Minute
)

func InitializeServer(port string, handler http.Handler, logger logs.Logger) (*http.Server, error) {
	if port == "" {
		return nil, errors.New("port not found in environment variables")
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		WriteTimeout:      serverWriteTimeout,
		IdleTimeout:       serverIdleTimeout,
	}

	logger.Info("server initialized", "port", port)

	return srv, nil
}

// StartServerAndWaitForShutdown serves until SIGINT/SIGTERM, then runs the
// given shutdown hooks after the HTTP server has drained.
func StartServerAndWaitForShutdown(srv *http.Server, logger logs.Logger, timeout time.Duration, onShutdown ...func()) {
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down http server")
	shCtx, shCancel := context.WithTimeout(context.Background(), timeout)
	defer shCancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	}

	for _, fn := range onShutdown {
		fn()
	}
	logger.Info("shutdown complete")
}
