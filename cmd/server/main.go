// Command server runs the donation engine HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/buy4good/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
