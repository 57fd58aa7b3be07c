package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/radhian/receipt-reconciliation/config"
	"github.com/radhian/receipt-reconciliation/controllers"

	"github.com/labstack/gommon/log"
)

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	app := controllers.App{}
	if err := app.Initialize(cfg); err != nil {
		log.Fatalf("[Server] Failed to initialize: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunServer(ctx); err != nil {
		log.Fatalf("[Server] Stopped with error: %v", err)
	}
}
