package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"shopcat/extractor/internal/config"
	"shopcat/extractor/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting category extractor...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Interrupt cancels between node visits; partial results are still
	// written out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}
