package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethanbaker/sparky/internal/api"
	"github.com/ethanbaker/sparky/pkg/utils"
)

// Start the API server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	// Serve until interrupted
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	api.Start(ctx, cfg)
}
