// Package config loads the optional lumaforge.toml application
// configuration. A missing file yields the built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

const DefaultPath = "lumaforge.toml"

type Config struct {
	LogLevel string   `toml:"log_level"`
	Window   Window   `toml:"window"`
	Controls Controls `toml:"controls"`
	Output   Output   `toml:"output"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Controls sets the initial slider positions.
type Controls struct {
	Threshold  int `toml:"threshold"`
	Brightness int `toml:"brightness"`
}

type Output struct {
	JPEGQuality int `toml:"jpeg_quality"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Window:   Window{Width: 1200, Height: 800},
		Controls: Controls{Threshold: 128, Brightness: 0},
		Output:   Output{JPEGQuality: 95},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Controls.Threshold < 0 || cfg.Controls.Threshold > 255 {
		return cfg, fmt.Errorf("controls.threshold must be in [0,255], got %d", cfg.Controls.Threshold)
	}
	if cfg.Controls.Brightness < -255 || cfg.Controls.Brightness > 255 {
		return cfg, fmt.Errorf("controls.brightness must be in [-255,255], got %d", cfg.Controls.Brightness)
	}
	if cfg.Output.JPEGQuality < 1 || cfg.Output.JPEGQuality > 100 {
		return cfg, fmt.Errorf("output.jpeg_quality must be in [1,100], got %d", cfg.Output.JPEGQuality)
	}

	return cfg, nil
}

// ZerologLevel maps the configured level name onto a zerolog level,
// defaulting to info for unknown names.
func (c Config) ZerologLevel() zerolog.Level {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
