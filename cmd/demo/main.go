// Command demo runs a minimal merchant shop against the paysafecard testing
// system. GET /pay creates a payment and redirects the customer to the
// provider-hosted authorization page; GET /capture finalizes the payment once
// the customer returns.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paysafecard "github.com/sebastianwalker/paysafecard-go"
	"github.com/sebastianwalker/paysafecard-go/internal/config"
	"github.com/sebastianwalker/paysafecard-go/internal/controller"
	"github.com/sebastianwalker/paysafecard-go/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)

	client := paysafecard.NewClient(cfg.Paysafecard.APIKey,
		paysafecard.WithTestingMode(cfg.Paysafecard.Testing),
		paysafecard.WithUrls(paysafecard.NewUrls(
			cfg.Paysafecard.SuccessURL,
			cfg.Paysafecard.FailureURL,
			cfg.Paysafecard.NotificationURL,
		)),
		paysafecard.WithTimeout(cfg.Paysafecard.RequestTimeout),
		paysafecard.WithLogger(logger),
	)

	router := controller.NewRouter(controller.RouterDeps{
		Client:     client,
		Logger:     logger,
		CORSConfig: cfg.Server.CORS,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Bool("testing", cfg.Paysafecard.Testing).Msg("Starting demo shop")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
}
