package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/motion-sandbox/render"
)

// Game is one demo's per-frame behavior
type Game interface {
	// HandleKey receives every key-down that is not a quit key
	HandleKey(c *Context, ev *tcell.EventKey)
	// Update advances state one tick
	Update(c *Context)
	// Draw renders into a buffer already cleared to the background color
	Draw(c *Context, buf *render.Buffer)
}

// Run drives g until a quit key, Quit, or ctx cancellation
func (c *Context) Run(ctx context.Context, g Game) {
	var timer *time.Timer
	if c.delay > 0 {
		timer = time.NewTimer(c.delay)
		defer timer.Stop()
	}

	for !c.quit {
		if ctx.Err() != nil {
			c.Log.Info("context cancelled")
			break
		}

		c.Tick(g)

		if timer == nil {
			continue
		}
		timer.Reset(c.delay)
		select {
		case <-ctx.Done():
			c.quit = true
		case <-timer.C:
		}
	}

	c.Log.Info("shutdown", zap.Int64("frames", c.Frames))
}

// Tick runs one frame: poll all pending input, update, clear, draw, present
func (c *Context) Tick(g Game) {
	c.pollEvents(g)

	g.Update(c)

	c.Buffer.Clear(c.Background)
	g.Draw(c, c.Buffer)
	c.Surface.Present(c.Buffer)
	c.Frames++
}

// pollEvents drains the screen's queue without blocking
func (c *Context) pollEvents(g Game) {
	for c.Screen.HasPendingEvent() {
		switch ev := c.Screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			c.Log.Debug("key",
				zap.String("name", ev.Name()),
				zap.Int("key", int(ev.Key())),
				zap.Int("modifiers", int(ev.Modifiers())),
			)
			if IsQuitKey(ev) {
				c.Log.Info("quit requested")
				c.quit = true
				continue
			}
			g.HandleKey(c, ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			c.Log.Debug("resize", zap.Int("cols", w), zap.Int("rows", h))
			c.Surface.Sync()
		}
	}
}

// IsQuitKey reports whether ev closes the demo: Escape, Ctrl-C or q
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
