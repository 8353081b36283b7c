package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spiro.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, CurveCount, cfg.Animation.Curves)
	assert.Equal(t, TickInterval, cfg.Animation.Interval())
	assert.Equal(t, ChimeDuration, cfg.Chime.Duration())
	assert.False(t, cfg.Chime.Enabled)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640
height = 480

[animation]
curves = 6
step = 3
seed = 99

[chime]
enabled = true

[save]
dialog = true
`)
	cfg, unknown, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, WindowTitle, cfg.Window.Title)
	assert.Equal(t, 6, cfg.Animation.Curves)
	assert.Equal(t, 3, cfg.Animation.Step)
	assert.Equal(t, int64(99), cfg.Animation.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.Animation.Interval())
	assert.True(t, cfg.Chime.Enabled)
	assert.Equal(t, ChimeFrequency, cfg.Chime.Frequency)
	assert.True(t, cfg.Save.Dialog)
	assert.Equal(t, ".", cfg.Save.Dir)
}

func TestLoadReportsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[animation]
curves = 2
speed = 11
`)
	cfg, unknown, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Animation.Curves)
	assert.Equal(t, []string{"animation.speed"}, unknown)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[window\nwidth = 1"},
		{"zero curves", "[animation]\ncurves = 0"},
		{"negative step", "[animation]\nstep = -5"},
		{"volume", "[chime]\nvolume = 2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
