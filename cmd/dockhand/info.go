// Package main provides the entry point for the dockhand CLI.
package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/harborloft/dockhand/internal/config"
	"github.com/harborloft/dockhand/internal/output"
)

// infoResult holds the data for info output.
type infoResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	ConfigDir string `json:"config_dir"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
	Color     string `json:"color"`
}

// newInfoCmd creates the info command.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show build and environment details",
		Long: `Show build information and the resolved runtime settings.

Displays the binary version, commit and build date, the Go runtime and
platform, the configuration directory, and the effective log settings
after config file, environment and flags have been applied.

Examples:
  dockhand info         # Human-readable sections
  dockhand info --json  # JSON for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInfo(cmd)
		},
	}
	return cmd
}

// runInfo executes the info command.
func runInfo(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false)

	settings, err := resolveSettings(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	printer = output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd, settings))

	result := infoResult{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		ConfigDir: config.Dir(),
		LogLevel:  settings.LogLevel,
		LogFormat: settings.LogFormat,
		Color:     settings.Color,
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanInfo(printer, result)
	return nil
}

// printHumanInfo outputs info in human-readable format.
func printHumanInfo(printer *output.Printer, info infoResult) {
	printer.Section("Build")
	printer.KeyValue("Version", info.Version)
	printer.KeyValue("Commit", info.Commit)
	printer.KeyValue("Date", info.Date)

	printer.Section("Runtime")
	printer.KeyValue("Go", info.GoVersion)
	printer.KeyValue("Platform", info.Platform)

	printer.Section("Configuration")
	printer.KeyValue("Config Dir", info.ConfigDir)
	printer.KeyValue("Log Level", info.LogLevel)
	printer.KeyValue("Log Format", info.LogFormat)
	printer.KeyValue("Color", info.Color)
}
