// Package engine owns the screen, presenter and audio for one demo and runs
// its frame loop.
package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/motion-sandbox/audio"
	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/render"
)

// ScreenFactory creates an uninitialized screen
type ScreenFactory func() (tcell.Screen, error)

// Options configures New
type Options struct {
	Name       string
	Config     *config.Config
	Logger     *zap.Logger
	FrameDelay time.Duration
	Mute       bool

	// NewScreen defaults to tcell.NewScreen
	NewScreen ScreenFactory
}

// Context holds every resource a demo loop touches
// All fields are accessed only from the loop goroutine
type Context struct {
	// ===== Resources =====
	// Valid while the matching cleanup flag is set.

	Screen  tcell.Screen
	Surface *render.Surface
	Sound   *audio.SoundManager // never nil; silent unless CleanupAudio is set

	// ===== Frame State =====

	Buffer     *render.Buffer
	Background render.RGB
	Foreground render.RGB
	Frames     int64

	Config *config.Config
	Log    *zap.Logger

	delay time.Duration
	flags CleanupFlags
	quit  bool
}

// New acquires the screen, then the presenter, then audio. On failure the
// resources acquired so far are released and the error is returned
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newScreen := opts.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	c := &Context{
		Sound:      audio.NewSoundManager(cfg.Audio.Volume),
		Buffer:     render.NewBuffer(cfg.Window.Width, cfg.Window.Height),
		Background: render.FromConfig(cfg.Colors.Background),
		Foreground: render.FromConfig(cfg.Colors.Foreground),
		Config:     cfg,
		Log:        logger,
		delay:      opts.FrameDelay,
	}

	screen, err := newScreen()
	if err != nil {
		logger.Error("create screen failed", zap.Error(err))
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		logger.Error("init screen failed", zap.Error(err))
		return nil, fmt.Errorf("init screen: %w", err)
	}
	c.Screen = screen
	c.flags |= CleanupScreen

	surface, err := render.NewSurface(screen)
	if err != nil {
		logger.Error("create renderer failed", zap.Error(err))
		c.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	c.Surface = surface
	c.flags |= CleanupRenderer

	if !opts.Mute && cfg.Audio.Enabled {
		if err := c.Sound.Initialize(); err != nil {
			// Non-fatal, demo runs without sound
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			c.flags |= CleanupAudio
		}
	}

	logger.Info("initialized",
		zap.String("name", opts.Name),
		zap.Stringer("resources", c.flags),
		zap.Int("viewport_width", cfg.Window.Width),
		zap.Int("viewport_height", cfg.Window.Height),
	)
	return c, nil
}

// Flags returns the resources still held
func (c *Context) Flags() CleanupFlags {
	return c.flags
}

// Close releases held resources in order renderer, screen, audio.
// Safe to call more than once
func (c *Context) Close() {
	if c.flags.Has(CleanupRenderer) {
		c.Log.Info("destroying renderer")
		c.Surface.Release()
		c.flags &^= CleanupRenderer
	}
	if c.flags.Has(CleanupScreen) {
		c.Log.Info("finalizing screen")
		c.Screen.Fini()
		c.flags &^= CleanupScreen
	}
	if c.flags.Has(CleanupAudio) {
		c.Log.Info("closing audio")
		c.Sound.Cleanup()
		c.flags &^= CleanupAudio
	}
	_ = c.Log.Sync()
}

// Quit sets the loop exit flag
func (c *Context) Quit() {
	c.quit = true
}

// Quitting reports whether the exit flag is set
func (c *Context) Quitting() bool {
	return c.quit
}
