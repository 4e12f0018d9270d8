// Package logging constructs the structured loggers used by the dockhand CLI.
//
// Loggers are isolated instances: nothing here touches the process-global
// slog default, so tests and commands can each own their log stream.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New builds a slog.Logger writing to w.
//
// level is one of "debug", "info", "warn" or "error"; format is "text"
// or "json". Unrecognized values fall back to info and text so a bad
// deployment setting degrades the log stream instead of breaking it.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Level maps a level name to its slog value. Unknown names map to info.
func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
