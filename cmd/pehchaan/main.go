package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pehchaan/marketplace-demo/internal/app"
	"github.com/pehchaan/marketplace-demo/internal/checkout"
	handler "github.com/pehchaan/marketplace-demo/internal/handler/http"
	"github.com/pehchaan/marketplace-demo/internal/localstore"
	"github.com/pehchaan/marketplace-demo/pkg/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "pehchaan").Logger()

	log.Info().Msg("Pehchaan marketplace starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	// Local persistence is a convenience, like a browser profile: when the
	// file cannot be opened the demo still runs, it just forgets on exit.
	var store localstore.Store
	bolt, err := localstore.OpenBolt(cfg.Store.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open data file, state will not survive restarts")
		store = localstore.NewMemory()
	} else {
		store = bolt
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close data file")
		}
	}()

	a := app.New(store, checkout.NewTimerSettlement(cfg.Checkout.SettlementDelay))

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      handler.NewRouter(a),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
