// Package config loads demo settings from an optional YAML file layered over
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/motion-sandbox/constant"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid config")

// RGB is a color triplet, written in YAML as [r, g, b]
type RGB [3]uint8

// Config holds every tunable shared by both demos
type Config struct {
	Window WindowConfig `yaml:"window"`
	Colors ColorConfig  `yaml:"colors"`
	Ball   BallConfig   `yaml:"ball"`
	Rect   RectConfig   `yaml:"rect"`
	Audio  AudioConfig  `yaml:"audio"`
}

// WindowConfig is the logical viewport size in pixels
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorConfig is the clear color and the shape color
type ColorConfig struct {
	Background RGB `yaml:"background"`
	Foreground RGB `yaml:"foreground"`
}

// BallConfig tunes the bouncing ball integrator
type BallConfig struct {
	Radius     int           `yaml:"radius"`
	Gravity    int           `yaml:"gravity"`
	Damping    float64       `yaml:"damping"`
	Force      int           `yaml:"force"`
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// RectConfig sizes the wrapping rectangle and its per-key step
type RectConfig struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Step       float64       `yaml:"step"`
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// AudioConfig controls the optional sound effects
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  constant.WindowWidth,
			Height: constant.WindowHeight,
		},
		Colors: ColorConfig{
			Background: constant.BackgroundRGB,
			Foreground: constant.ForegroundRGB,
		},
		Ball: BallConfig{
			Radius:     constant.BallRadius,
			Gravity:    constant.Gravity,
			Damping:    constant.Damping,
			Force:      constant.Force,
			FrameDelay: constant.BallFrameDelay,
		},
		Rect: RectConfig{
			Width:      constant.RectWidth,
			Height:     constant.RectHeight,
			Step:       constant.RectStep,
			FrameDelay: constant.RectFrameDelay,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over the defaults and validates the result
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the demos cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0,
		c.Window.Width > constant.MaxWindowSide || c.Window.Height > constant.MaxWindowSide:
		return fmt.Errorf("%w: window %dx%d, sides must be 1..%d",
			ErrInvalid, c.Window.Width, c.Window.Height, constant.MaxWindowSide)
	case c.Ball.Radius <= 0 || 2*c.Ball.Radius > c.Window.Height:
		return fmt.Errorf("%w: ball radius %d", ErrInvalid, c.Ball.Radius)
	case c.Ball.Damping < 0 || c.Ball.Damping > 1:
		return fmt.Errorf("%w: damping %v outside [0,1]", ErrInvalid, c.Ball.Damping)
	case c.Ball.FrameDelay < 0 || c.Rect.FrameDelay < 0:
		return fmt.Errorf("%w: negative frame delay", ErrInvalid)
	case c.Rect.Width <= 0 || c.Rect.Height <= 0:
		return fmt.Errorf("%w: rect %vx%v", ErrInvalid, c.Rect.Width, c.Rect.Height)
	case c.Rect.Step <= 0:
		return fmt.Errorf("%w: rect step %v", ErrInvalid, c.Rect.Step)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
