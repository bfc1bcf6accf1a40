// Package main is the entrypoint for the time64 CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/time64/internal/cli"
	"github.com/roach88/time64/internal/config"
	"github.com/roach88/time64/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	os.Exit(cli.GetExitCode(err))
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return cli.WrapExitError(cli.ExitCommandError, "config", err)
	}

	observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "time64",
	})

	err = cli.NewRootCommand(cfg).ExecuteContext(ctx)
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Commands report their own failures; anything else came from cobra.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.WrapExitError(cli.ExitCommandError, "usage", err)
	}
	return err
}
