package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	_ "time/tzdata"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("astro-profile: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := initializeApp()
	if err != nil {
		return fmt.Errorf("wire application: %w", err)
	}
	defer cleanup()

	return app.Run(ctx)
}
