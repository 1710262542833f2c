package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"carrental-desk/internal/api/cli"
	"carrental-desk/internal/config"
	"carrental-desk/internal/logger"
	"carrental-desk/internal/repository/memory"
	"carrental-desk/internal/service"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 when the operator exits, 1 on any
// fatal error.
func run() (code int) {
	var sessionID string
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Desk panicked", "panic", r, "session_id", sessionID)
			fmt.Fprintf(os.Stderr, "Unknown fatal error occurred: %v\n", r)
			code = 1
		}
	}()

	// Parse command-line flags
	configPath := flag.String("config", "", "Path to an optional YAML configuration file")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: failed to load configuration: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	sessionID = uuid.NewString()
	logger.Info("Starting car rental desk...", "log_level", cfg.Log.Level, "session_id", sessionID)

	// Initialize records and services
	store := memory.NewStore()
	deskSvc := service.NewDeskService(
		store.CarRepository,
		store.CustomerRepository,
		store.RentalRepository,
		cfg.Desk.MaxIDLength,
	)

	desk := cli.NewDesk(deskSvc, os.Stdin, os.Stdout, cli.Options{
		Title:     cfg.Desk.Title,
		SessionID: sessionID,
	})

	ctx := context.Background()
	if err := desk.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "Desk stopped with fatal error", "error", err, "session_id", sessionID)
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		return 1
	}
	logger.InfoContext(ctx, "Desk closed", "session_id", sessionID)
	return 0
}
