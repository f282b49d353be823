package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-sandbox/constant"
	"github.com/lixenwraith/motion-sandbox/render"
)

// trackedScreen counts Fini calls and can report a zero size
type trackedScreen struct {
	tcell.SimulationScreen
	finis int
	zero  bool
}

func (s *trackedScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

func (s *trackedScreen) Size() (int, int) {
	if s.zero {
		return 0, 0
	}
	return s.SimulationScreen.Size()
}

func newTracked() *trackedScreen {
	return &trackedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
}

func factory(s tcell.Screen) ScreenFactory {
	return func() (tcell.Screen, error) { return s, nil }
}

func newTestContext(t *testing.T, delay time.Duration) (*Context, *trackedScreen) {
	t.Helper()
	screen := newTracked()
	c, err := New(Options{
		Name:       "test",
		Mute:       true,
		FrameDelay: delay,
		NewScreen:  factory(screen),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, screen
}

// recordingGame remembers what the loop fed it
type recordingGame struct {
	keys    []tcell.Key
	runes   []rune
	updates int
	draws   int
}

func (g *recordingGame) HandleKey(_ *Context, ev *tcell.EventKey) {
	g.keys = append(g.keys, ev.Key())
	g.runes = append(g.runes, ev.Rune())
}

func (g *recordingGame) Update(*Context) { g.updates++ }

func (g *recordingGame) Draw(c *Context, buf *render.Buffer) {
	g.draws++
	buf.Clear(c.Foreground)
}

func TestNewAcquiresScreenAndRenderer(t *testing.T) {
	c, _ := newTestContext(t, 0)

	assert.Equal(t, CleanupScreen|CleanupRenderer, c.Flags())
	assert.NotNil(t, c.Surface)
	assert.NotNil(t, c.Sound)
	w, h := c.Buffer.Bounds()
	assert.Equal(t, constant.WindowWidth, w)
	assert.Equal(t, constant.WindowHeight, h)
}

func TestNewScreenFactoryFailure(t *testing.T) {
	boom := errors.New("no tty")
	_, err := New(Options{
		Mute:      true,
		NewScreen: func() (tcell.Screen, error) { return nil, boom },
	})
	require.ErrorIs(t, err, boom)
}

func TestNewRendererFailureReleasesScreenOnly(t *testing.T) {
	screen := newTracked()
	screen.zero = true

	_, err := New(Options{Mute: true, NewScreen: factory(screen)})

	require.ErrorIs(t, err, render.ErrScreenTooSmall)
	assert.Equal(t, 1, screen.finis, "initialized screen must be finalized exactly once")
}

func TestCloseIsIdempotent(t *testing.T) {
	screen := newTracked()
	c, err := New(Options{Mute: true, NewScreen: factory(screen)})
	require.NoError(t, err)

	c.Close()
	c.Close()

	assert.Equal(t, 1, screen.finis)
	assert.Equal(t, CleanupFlags(0), c.Flags())
}

func TestTickForwardsKeysAndPresents(t *testing.T) {
	c, screen := newTestContext(t, 0)
	g := &recordingGame{}

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	c.Tick(g)

	assert.Equal(t, []tcell.Key{tcell.KeyRight, tcell.KeyRune}, g.keys)
	assert.Equal(t, ' ', g.runes[1])
	assert.Equal(t, 1, g.updates)
	assert.Equal(t, 1, g.draws)
	assert.EqualValues(t, 1, c.Frames)
	assert.False(t, c.Quitting())

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, constant.HalfBlock, r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, c.Foreground.Tcell(), fg)
}

func TestRunStopsOnEscape(t *testing.T) {
	c, screen := newTestContext(t, time.Millisecond)
	g := &recordingGame{}

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	c.Run(context.Background(), g)

	assert.True(t, c.Quitting())
	assert.Equal(t, []tcell.Key{tcell.KeyLeft}, g.keys, "quit keys are not forwarded")
	assert.Equal(t, 1, g.updates, "the frame that saw quit still completes")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	c, _ := newTestContext(t, time.Millisecond)
	g := &recordingGame{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx, g)

	assert.Zero(t, g.updates)
}

func TestRunPacesFrames(t *testing.T) {
	c, _ := newTestContext(t, time.Millisecond)
	g := &recordingGame{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c.Run(ctx, g)

	assert.Greater(t, g.updates, 1)
	assert.Less(t, g.updates, 60, "frame delay bounds the loop rate")
	assert.EqualValues(t, g.updates, c.Frames)
}

func TestIsQuitKey(t *testing.T) {
	assert.True(t, IsQuitKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, IsQuitKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, IsQuitKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, IsQuitKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.False(t, IsQuitKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
}

func TestCleanupFlagsString(t *testing.T) {
	assert.Equal(t, "none", CleanupFlags(0).String())
	assert.Equal(t, "screen|renderer", (CleanupScreen | CleanupRenderer).String())
	assert.Equal(t, "screen|renderer|audio", (CleanupScreen | CleanupRenderer | CleanupAudio).String())
}
