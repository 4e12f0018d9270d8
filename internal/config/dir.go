// Package config provides settings resolution and the global
// configuration directory for dockhand.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the dockhand configuration directory.
//
// Resolution:
//   - $DOCKHAND_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/dockhand if set (respects XDG on any platform)
//   - %AppData%/dockhand on Windows
//   - ~/.config/dockhand on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("DOCKHAND_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dockhand")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "dockhand")
		}
	}

	// macOS and Linux: ~/.config/dockhand
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dockhand")
}

// File returns the path of the optional settings file inside Dir.
// Returns "" when no configuration directory can be resolved.
func File() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
