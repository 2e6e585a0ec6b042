// Package main is the entry point for the freewipe CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/runoshun/freewipe/internal/app"
	"github.com/runoshun/freewipe/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		// Allow help and version even when the config file is broken
		if canRunWithoutContainer(os.Args[1:]) {
			return cli.NewRootCommand(nil, version).ExecuteContext(ctx)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// canRunWithoutContainer reports whether args only ask for help or version.
func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
