// Package main provides the entry point for the dockhand CLI.
package main

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harborloft/dockhand/internal/app"
	"github.com/harborloft/dockhand/internal/logging"
	"github.com/harborloft/dockhand/internal/output"
)

// newGreetCmd creates the greet command.
func newGreetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Greet a name through the application lifecycle",
		Long: `Run one construct/greet/cleanup pass and print the greeting.

The name is not validated; omitting it greets the empty string and
prints "Hello, !".

Examples:
  dockhand greet "Docker World"   # Hello, Docker World!
  dockhand greet                  # Hello, !
  dockhand greet Ada --json       # {"greeting": "Hello, Ada!"}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runGreet(cmd, name)
		},
	}
	return cmd
}

// runGreet executes the greet command.
func runGreet(cmd *cobra.Command, name string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false)

	settings, err := resolveSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	printer = output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd, settings))

	logger := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)

	// The controller writes the greeting line itself; capture it so JSON
	// mode can reshape it without a second formatting path.
	var direct bytes.Buffer
	a := app.New(app.WithLogger(logger), app.WithOutput(&direct))
	defer func() { _ = a.Close() }()

	a.Greet(name)
	greeting := strings.TrimSuffix(direct.String(), "\n")

	if printer.IsJSON() {
		return printer.Success(map[string]any{"greeting": greeting})
	}
	printer.Println(greeting)
	return nil
}
