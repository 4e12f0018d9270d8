// Package output provides structured output handling for the dockhand CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for scripts that parse its
// output.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"greeting": greeting})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"greeting": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped:
//
//	printer.styles.Error   // Red, bold
//	printer.styles.Success // Green
//	printer.styles.Warning // Yellow
//	printer.styles.Title   // Blue, bold
//	printer.styles.Key     // Cyan
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad flags, caught demo failure)
//	output.ExitSystemError // 2: System error (unreadable config, I/O error)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("unknown log level: verbose")
//	output.NewSystemError("reading config file failed")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
