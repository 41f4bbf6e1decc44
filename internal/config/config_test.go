package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumaforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 1600
height = 900

[controls]
threshold = 200
brightness = -30

[output]
jpeg_quality = 80
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, float32(1600), cfg.Window.Width)
	assert.Equal(t, 200, cfg.Controls.Threshold)
	assert.Equal(t, -30, cfg.Controls.Brightness)
	assert.Equal(t, 80, cfg.Output.JPEGQuality)
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Default().Controls, cfg.Controls)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	cases := []string{
		"[controls]\nthreshold = 300",
		"[controls]\nbrightness = -500",
		"[output]\njpeg_quality = 0",
	}
	for _, content := range cases {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, content)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "window = {"))
	assert.Error(t, err)
}

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, Config{LogLevel: "debug"}.ZerologLevel())
	assert.Equal(t, zerolog.WarnLevel, Config{LogLevel: "warn"}.ZerologLevel())
	assert.Equal(t, zerolog.ErrorLevel, Config{LogLevel: "error"}.ZerologLevel())
	assert.Equal(t, zerolog.InfoLevel, Config{LogLevel: "info"}.ZerologLevel())
	assert.Equal(t, zerolog.InfoLevel, Config{LogLevel: "bogus"}.ZerologLevel())
}
