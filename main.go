// Package main is the entry point for the photoboard API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"photoboard/src/app/server"
	"photoboard/src/infra/config"
	"photoboard/src/infra/db"
	"photoboard/src/infra/logger"
	"photoboard/src/infra/repo"
	"photoboard/src/infra/token"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"environment", cfg.Auth.Environment,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := db.Migrate(cfg.Database, log); err != nil {
		return err
	}

	// Initialize repository and token service
	boardRepo := repo.NewPostgresRepository(pg, log)
	tokens := token.New(token.Config{
		Secret: cfg.Auth.SigningSecret(),
		TTL:    cfg.Auth.TokenTTL,
	})

	// Create and run HTTP server
	srv, err := server.New(cfg, log, boardRepo, tokens)
	if err != nil {
		return err
	}

	// Run blocks until shutdown signal is received
	return srv.Run()
}
