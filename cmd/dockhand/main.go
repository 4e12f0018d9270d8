// Package main provides the entry point for the dockhand CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/harborloft/dockhand/internal/config"
	"github.com/harborloft/dockhand/internal/envfile"
	"github.com/harborloft/dockhand/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// flagOverrides collects the settings-related persistent flags. Flags
// left at their empty default mean "not set", so lower layers apply.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	lookup := func(name string) string {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.Root().PersistentFlags().Lookup(name)
		}
		if flag == nil {
			return ""
		}
		return flag.Value.String()
	}
	return config.Overrides{
		LogLevel:  lookup("log-level"),
		LogFormat: lookup("log-format"),
		Color:     lookup("color"),
	}
}

// resolveSettings produces the effective settings for a command
// invocation. Bad values are user errors; an unreadable or malformed
// config file is a system error.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Resolve(flagOverrides(cmd))
	if err != nil {
		if errors.Is(err, config.ErrInvalidSetting) {
			return settings, output.NewUserError(err.Error())
		}
		return settings, output.NewSystemErrorWithCause(err.Error(), err)
	}
	return settings, nil
}

// useColor resolves the effective color decision for a command's stdout.
func useColor(cmd *cobra.Command, settings config.Settings) bool {
	return output.ResolveColorMode(settings.Color, output.IsTTY(cmd.OutOrStdout()))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the dockhand CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dockhand",
		Short: "A containerized-Go starter application",
		Long: `Dockhand - a starter application showing how a production Go CLI fits together.

Running dockhand with no arguments executes the demo sequence: the
application initializes, greets two fixed names, processes five numbered
items with structured log output, and cleans up.

All commands support --json for structured output. Logs go to stderr so
stdout stays clean for the greeting lines.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd)
		},
	}

	// Load .env.local (then .env) before any command runs.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Persistent flags available to all subcommands. The settings flags
	// default to empty so config-file and environment values show through.
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	cmd.PersistentFlags().String("color", "", "Color mode: auto, always or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newGreetCmd())
	cmd.AddCommand(newInfoCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-checkout override, gitignored)
//  2. $CWD/.env         (per-checkout)
//  3. ~/.config/dockhand/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
