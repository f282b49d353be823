package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/engine"
	"github.com/lixenwraith/motion-sandbox/physics"
	"github.com/lixenwraith/motion-sandbox/raster"
	"github.com/lixenwraith/motion-sandbox/render"
)

// ballGame owns the single ball entity
type ballGame struct {
	ball   physics.Ball
	params physics.Params
}

func newBallGame(cfg *config.Config) *ballGame {
	return &ballGame{
		ball:   physics.NewBall(cfg.Window.Width, cfg.Window.Height, cfg.Ball.Radius),
		params: physics.ParamsFromConfig(cfg),
	}
}

func (g *ballGame) HandleKey(c *engine.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
		physics.Impulse(&g.ball)
		c.Log.Debug("impulse", zap.Int("y", g.ball.Y), zap.Int("vy", g.ball.VY))
	}
}

func (g *ballGame) Update(c *engine.Context) {
	res := physics.Step(&g.ball, g.params)

	if res.Kicked {
		c.Sound.PlayImpulse()
	}
	// A resting ball touches the floor every tick at gravity speed; stay quiet for that
	if res.Contact != physics.ContactNone && res.Speed > g.params.Gravity {
		c.Log.Debug("bounce",
			zap.Stringer("contact", res.Contact),
			zap.Int("speed", res.Speed),
			zap.Int("vy", g.ball.VY),
		)
		c.Sound.PlayBounce(res.Speed)
	}
}

func (g *ballGame) Draw(c *engine.Context, buf *render.Buffer) {
	raster.FillCircle[render.RGB](buf, g.ball.X, g.ball.Y, g.ball.Radius, c.Foreground)
}
