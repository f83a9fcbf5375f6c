package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/tally/app/tally"
	"github.com/dmitrymomot/tally/core/config"
	"github.com/dmitrymomot/tally/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg tally.Config
	config.MustLoad(&cfg) // panic on error

	log := tally.NewLogger(cfg)

	app, err := tally.NewApp(cfg, tally.WithLogger(log))
	if err != nil {
		log.Error("Failed to create application", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	// Exits non-zero when MongoDB stays unreachable for the whole attempt budget.
	if err := app.Run(ctx); err != nil {
		log.Error("Application stopped with error", logger.Component("app"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
