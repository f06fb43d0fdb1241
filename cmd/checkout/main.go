package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"convenience-store/pkg/container"
	"convenience-store/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// Load từ .env file nếu có, không có thì dùng system environment variables
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Error("Checkout session failed", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	appContainer, err := container.NewContainer(os.Stdin, os.Stdout)
	if err != nil {
		log.Printf("❌ Failed to initialize container: %v", err)
		return err
	}

	// ========================================
	// 2. RUN CHECKOUT LOOP
	// ========================================
	runErr := appContainer.CheckoutHandler.Run(ctx)

	// ========================================
	// 3. CLEANUP (export report)
	// ========================================
	if err := appContainer.Cleanup(); err != nil {
		logger.Error("Failed to export session report", err)
	}

	return runErr
}
