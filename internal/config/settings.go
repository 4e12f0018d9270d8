package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSetting marks a settings value the CLI does not understand,
// as opposed to a config file that could not be read or parsed.
var ErrInvalidSetting = errors.New("invalid setting")

// Environment variables the CLI layer consumes. The application core
// reads none of them.
const (
	EnvLogLevel  = "DOCKHAND_LOG_LEVEL"
	EnvLogFormat = "DOCKHAND_LOG_FORMAT"
	EnvColor     = "DOCKHAND_COLOR"
)

// Settings holds the deployment-tooling knobs: how the CLI logs and
// colors its output. All three can come from the config file, the
// environment, or flags.
type Settings struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     string `yaml:"color"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Color:     "auto",
	}
}

// Load reads settings from a YAML file, filling unset fields from
// Default. A missing file (or empty path) yields defaults; a file that
// exists but cannot be read or parsed is an error.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Fields absent from the file keep their defaults.
	defaults := Default()
	if settings.LogLevel == "" {
		settings.LogLevel = defaults.LogLevel
	}
	if settings.LogFormat == "" {
		settings.LogFormat = defaults.LogFormat
	}
	if settings.Color == "" {
		settings.Color = defaults.Color
	}
	return settings, nil
}

// FromEnv overlays DOCKHAND_* environment variables onto base.
func FromEnv(base Settings) Settings {
	if v := os.Getenv(EnvLogLevel); v != "" {
		base.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		base.LogFormat = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		base.Color = v
	}
	return base
}

// Validate rejects settings values the CLI does not understand.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q (expected debug, info, warn or error)", ErrInvalidSetting, s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q (expected text or json)", ErrInvalidSetting, s.LogFormat)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: unknown color mode %q (expected auto, always or never)", ErrInvalidSetting, s.Color)
	}
	return nil
}

// Overrides carries flag values layered on top of everything else.
// Empty fields mean "not set on the command line".
type Overrides struct {
	LogLevel  string
	LogFormat string
	Color     string
}

// Resolve produces the effective settings: defaults, then the config
// file in Dir, then environment variables, then flag overrides. The
// result is validated once at the end.
func Resolve(overrides Overrides) (Settings, error) {
	settings, err := Load(File())
	if err != nil {
		return settings, err
	}
	settings = FromEnv(settings)

	if overrides.LogLevel != "" {
		settings.LogLevel = overrides.LogLevel
	}
	if overrides.LogFormat != "" {
		settings.LogFormat = overrides.LogFormat
	}
	if overrides.Color != "" {
		settings.Color = overrides.Color
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}
