package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"salary-stats/internal"
	"salary-stats/internal/configs"
)

func main() {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading application configuration: %v", err)
	}

	app, err := internal.NewApp(appConfig, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("Application finished with error: %v", err)
	}
}
