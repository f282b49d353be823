package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/engine"
	"github.com/lixenwraith/motion-sandbox/raster"
	"github.com/lixenwraith/motion-sandbox/render"
	"github.com/lixenwraith/motion-sandbox/wrap"
)

// rectGame owns the single wrapping rectangle
type rectGame struct {
	rect   wrap.Rect
	step   float64
	vw, vh float64

	frame wrap.Frame // last classification, drawn by Draw
}

func newRectGame(cfg *config.Config) *rectGame {
	return &rectGame{
		rect: wrap.FromConfig(cfg),
		step: cfg.Rect.Step,
		vw:   float64(cfg.Window.Width),
		vh:   float64(cfg.Window.Height),
	}
}

var arrowKeys = map[tcell.Key]wrap.Direction{
	tcell.KeyUp:    wrap.Up,
	tcell.KeyDown:  wrap.Down,
	tcell.KeyLeft:  wrap.Left,
	tcell.KeyRight: wrap.Right,
}

func (g *rectGame) HandleKey(c *engine.Context, ev *tcell.EventKey) {
	dir, ok := arrowKeys[ev.Key()]
	if !ok {
		return
	}
	g.rect = wrap.Move(g.rect, dir, g.step)
	c.Log.Debug("move",
		zap.Stringer("direction", dir),
		zap.Float64("x", g.rect.X),
		zap.Float64("y", g.rect.Y),
	)
}

func (g *rectGame) Update(c *engine.Context) {
	prev := g.frame.State
	g.frame = wrap.Classify(g.rect, g.vw, g.vh)
	g.rect = g.frame.Rect

	if g.frame.State != prev {
		c.Log.Debug("edge", zap.Stringer("state", g.frame.State))
	}
	if g.frame.State.FullyOut() {
		c.Sound.PlayWrap()
	}
}

func (g *rectGame) Draw(c *engine.Context, buf *render.Buffer) {
	for _, r := range g.frame.Draws {
		raster.FillRect[render.RGB](buf, r.X, r.Y, r.W, r.H, c.Foreground)
	}
}
