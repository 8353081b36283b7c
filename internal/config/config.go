package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Spirograph!"

	// Animation parameters
	CurveCount   = 4
	StepDegrees  = 5
	TickInterval = 10 * time.Millisecond
	// Upper bound on ticks run in a single frame when catching up.
	MaxTicksPerFrame = 8

	// Cursor glyph
	CursorSize = 9
	LineWidth  = 1.5

	// Chime played on every ensemble restart
	ChimeFrequency = 660.0
	ChimeDuration  = 250 * time.Millisecond
	ChimeVolume    = 0.3

	SavePrefix = "spiro"
)

// Config is the runtime configuration. Zero values in a loaded file fall back
// to the defaults above.
type Config struct {
	Window    Window    `toml:"window"`
	Animation Animation `toml:"animation"`
	Chime     Chime     `toml:"chime"`
	Save      Save      `toml:"save"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Animation struct {
	Curves     int   `toml:"curves"`
	Step       int   `toml:"step"`
	IntervalMs int   `toml:"interval_ms"`
	Seed       int64 `toml:"seed"`
}

// Interval returns the tick interval.
func (a Animation) Interval() time.Duration {
	return time.Duration(a.IntervalMs) * time.Millisecond
}

type Chime struct {
	Enabled    bool    `toml:"enabled"`
	Frequency  float64 `toml:"frequency"`
	DurationMs int     `toml:"duration_ms"`
	Volume     float64 `toml:"volume"`
}

// Duration returns how long one chime lasts.
func (c Chime) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

type Save struct {
	// Dir is where drawings are written when no dialog is used.
	Dir string `toml:"dir"`
	// Dialog asks for the file name with a native save dialog.
	Dialog bool `toml:"dialog"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Animation: Animation{
			Curves:     CurveCount,
			Step:       StepDegrees,
			IntervalMs: int(TickInterval / time.Millisecond),
		},
		Chime: Chime{
			Frequency:  ChimeFrequency,
			DurationMs: int(ChimeDuration / time.Millisecond),
			Volume:     ChimeVolume,
		},
		Save: Save{Dir: "."},
	}
}

// Load reads a TOML file over the defaults. Keys the file sets but Config
// does not know are returned so the caller can warn about them.
func Load(path string) (Config, []string, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), nil, fmt.Errorf("load config %s: %w", path, err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	cfg.fill()
	if err := cfg.Validate(); err != nil {
		return Default(), unknown, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, unknown, nil
}

// fill restores defaults for values a file explicitly zeroed.
func (c *Config) fill() {
	d := Default()
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Animation.IntervalMs == 0 {
		c.Animation.IntervalMs = d.Animation.IntervalMs
	}
	if c.Chime.Frequency == 0 {
		c.Chime.Frequency = d.Chime.Frequency
	}
	if c.Chime.DurationMs == 0 {
		c.Chime.DurationMs = d.Chime.DurationMs
	}
	if c.Save.Dir == "" {
		c.Save.Dir = d.Save.Dir
	}
}

// Validate rejects values the animator cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Animation.Curves <= 0:
		return fmt.Errorf("animation.curves must be positive, got %d", c.Animation.Curves)
	case c.Animation.Step <= 0:
		return fmt.Errorf("animation.step must be positive, got %d", c.Animation.Step)
	case c.Animation.IntervalMs < 0:
		return fmt.Errorf("animation.interval_ms must not be negative, got %d", c.Animation.IntervalMs)
	case c.Chime.Volume < 0 || c.Chime.Volume > 1:
		return fmt.Errorf("chime.volume must be in [0, 1], got %g", c.Chime.Volume)
	}
	return nil
}
