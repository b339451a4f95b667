// Package main is the entry point for the credtrack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mtoledo/credtrack/internal/app"
	"github.com/mtoledo/credtrack/internal/cli"
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
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	// Flush pending snapshot writes before exiting.
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
