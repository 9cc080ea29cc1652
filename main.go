package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sjsage522/zenlesscollector/commands"
	"sjsage522/zenlesscollector/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
