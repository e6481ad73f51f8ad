package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhle/devdesign-studio/internal/cli"
)

// Version information - set during build
var version = "dev"

func main() {
	cli.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Errors are printed by the command that failed.
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
