package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-sandbox/config"
	"github.com/lixenwraith/motion-sandbox/engine"
)

func newSimContext(t *testing.T, cfg *config.Config) (*engine.Context, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := engine.New(engine.Options{
		Name:      demoName,
		Config:    cfg,
		Mute:      true,
		NewScreen: func() (tcell.Screen, error) { return screen, nil },
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, screen
}

func TestBallStartsAtRestOnFloor(t *testing.T) {
	cfg := config.Default()
	c, _ := newSimContext(t, cfg)
	g := newBallGame(cfg)

	c.Tick(g)

	assert.Equal(t, 400, g.ball.X)
	assert.Equal(t, cfg.Window.Height-cfg.Ball.Radius, g.ball.Y, "first tick snaps the ball onto the floor")
	assert.Zero(t, g.ball.VY)

	// Ball is drawn at its center and bottom edge
	assert.Equal(t, c.Foreground, c.Buffer.At(g.ball.X, g.ball.Y))
	assert.Equal(t, c.Foreground, c.Buffer.At(g.ball.X, cfg.Window.Height-1))
	assert.Equal(t, c.Background, c.Buffer.At(g.ball.X, g.ball.Y-cfg.Ball.Radius-1))
}

func TestSpaceKicksBall(t *testing.T) {
	cfg := config.Default()
	c, screen := newSimContext(t, cfg)
	g := newBallGame(cfg)
	c.Tick(g)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	c.Tick(g)
	assert.Equal(t, -cfg.Ball.Force, g.ball.VY)
	assert.Equal(t, 500, g.ball.Y)

	c.Tick(g)
	assert.Equal(t, -cfg.Ball.Force+cfg.Ball.Gravity, g.ball.VY)
}

func TestOtherKeysIgnored(t *testing.T) {
	cfg := config.Default()
	c, screen := newSimContext(t, cfg)
	g := newBallGame(cfg)
	c.Tick(g)

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	c.Tick(g)

	assert.Zero(t, g.ball.VY)
	assert.False(t, g.ball.Pending())
}

func TestBallLoopQuitsOnEscape(t *testing.T) {
	cfg := config.Default()
	c, screen := newSimContext(t, cfg)
	g := newBallGame(cfg)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c.Run(ctx, g)

	require.True(t, c.Quitting())
	assert.EqualValues(t, 1, c.Frames)
	assert.Equal(t, -cfg.Ball.Force, g.ball.VY)
}
