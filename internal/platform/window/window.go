// Package window runs pong in a desktop window with Ebitengine. The
// simulation draws into the software framebuffer, which is uploaded to
// the screen once per frame.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/recording"
)

// Options configures the window frontend.
type Options struct {
	Window   config.WindowConfig
	Keys     config.KeyConfig
	TickRate int
	Record   bool // keep the frames for Game.Recorder
	Logger   *log.Logger
}

// Game implements ebiten.Game. Each Update is exactly one simulation step
// of 1/TPS seconds.
type Game struct {
	state    *pong.GameState
	fb       *core.Framebuffer
	pixels   []byte
	input    core.Input
	keys     keyBindings
	dt       float64
	recorder *recording.Recorder
	logger   *log.Logger

	// pressed polls a key; ebiten.IsKeyPressed outside tests.
	pressed func(ebiten.Key) bool
}

// NewGame creates a game with a fresh state in menu mode.
func NewGame(opts Options) (*Game, error) {
	keys, err := resolveKeys(opts.Keys)
	if err != nil {
		return nil, err
	}
	if opts.Window.Width <= 0 || opts.Window.Height <= 0 {
		return nil, errors.New("window: framebuffer size must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rt := core.RuntimeConfig{ScreenW: opts.Window.Width, ScreenH: opts.Window.Height, TickRate: opts.TickRate}

	g := &Game{
		state:   pong.NewGameState(),
		fb:      core.NewFramebuffer(rt.ScreenW, rt.ScreenH),
		pixels:  make([]byte, rt.ScreenW*rt.ScreenH*4),
		keys:    keys,
		dt:      rt.FrameDelta(),
		logger:  opts.Logger,
		pressed: ebiten.IsKeyPressed,
	}
	if opts.Record {
		g.recorder = &recording.Recorder{}
	}
	return g, nil
}

// Update samples the keyboard and advances the simulation one step.
func (g *Game) Update() error {
	if g.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.input.BeginFrame()
	for b, keys := range g.keys {
		down := false
		for _, k := range keys {
			if g.pressed(k) {
				down = true
				break
			}
		}
		g.input.Process(core.Button(b), down)
	}

	if g.recorder != nil {
		g.recorder.Add(&g.input, g.dt)
	}

	result := g.state.Simulate(&g.input, g.dt, g.fb)
	for _, e := range result.Events {
		switch e.Kind {
		case pong.EventScored:
			g.logger.Info("point", "side", e.Side, "score1", g.state.Score1, "score2", g.state.Score2)
		default:
			g.logger.Debug("event", "kind", e.Kind, "side", e.Side)
		}
	}
	return nil
}

// Draw uploads the framebuffer drawn by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.CopyRGBA(g.pixels)
	screen.WritePixels(g.pixels)
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales
// it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

// State returns the running game.
func (g *Game) State() *pong.GameState {
	return g.state
}

// Recorder returns the session's frames, or nil when not recording.
func (g *Game) Recorder() *recording.Recorder {
	return g.recorder
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(g *Game, opts Options) error {
	ebiten.SetWindowSize(opts.Window.Width*opts.Window.Scale, opts.Window.Height*opts.Window.Scale)
	ebiten.SetWindowTitle(opts.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(opts.TickRate, 1))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
