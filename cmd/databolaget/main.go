// Package main is the databolaget command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/databolaget/databolaget/internal/adapters/driving/cli"
	"github.com/databolaget/databolaget/internal/core/services"
	"github.com/databolaget/databolaget/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetWiring(newWiring(services.NewProductActionService()))

	err := cli.Execute(ctx)
	stop()
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
