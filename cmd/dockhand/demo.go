// Package main provides the entry point for the dockhand CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harborloft/dockhand/internal/app"
	"github.com/harborloft/dockhand/internal/logging"
	"github.com/harborloft/dockhand/internal/output"
)

// runDemo executes the full application lifecycle: banner, construct,
// run, cleanup. This is what `dockhand` with no arguments does.
func runDemo(cmd *cobra.Command) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false)
		printer.Error(err)
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
	logger.Info("=== Go Docker Application ===")

	return runLifecycle(cmd.Context(), logger, cmd.OutOrStdout())
}

// runLifecycle wraps one construct/run/cleanup pass in the single
// error-handling scope the entry point provides. Recognized errors are
// logged as "Application error: ..."; a panic escaping the run is
// recovered after the deferred cleanup has executed and logged as
// "Unknown error occurred". Both map to exit code 1.
func runLifecycle(ctx context.Context, logger *slog.Logger, out io.Writer, steps ...app.Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unknown error occurred", "panic", fmt.Sprint(r))
			err = output.NewUserError("Unknown error occurred")
		}
	}()

	opts := []app.Option{app.WithLogger(logger), app.WithOutput(out)}
	if len(steps) > 0 {
		opts = append(opts, app.WithSteps(steps...))
	}

	a := app.New(opts...)
	// Registered after the recover handler, so cleanup runs first when
	// the stack unwinds.
	defer func() { _ = a.Close() }()

	if runErr := a.Run(ctx); runErr != nil {
		logger.Error(fmt.Sprintf("Application error: %s", runErr))
		return output.NewUserError(fmt.Sprintf("Application error: %s", runErr))
	}
	return nil
}
