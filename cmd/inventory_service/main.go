package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ridloal/inventory-management/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("Inventory service exited", err)
		os.Exit(1)
	}
}
