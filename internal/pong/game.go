package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Menu layout, in world units.
const (
	menuOptionY      = -10.0
	menuHumanX       = -60.0
	menuAIX          = 40.0
	menuTitleX       = -20.0
	menuTitleY       = 40.0
	menuTitleSize    = 2.0
	scoreY           = 40.0
	score1X          = -10.0
	score2X          = 10.0
	menuSelected     = core.ColorRed
	menuNotSelected  = core.ColorDimGray
	menuTitleColor   = core.ColorWhite
	menuOptionAI     = 0
	menuOptionHuman  = 1
	menuOptionsCount = 2
)

// Simulate advances the game by one frame of dt seconds using the input
// snapshot, and issues this frame's draw calls to r.
// dt is trusted as given; a very large step can tunnel the ball through a
// paddle.
func (s *GameState) Simulate(in *core.Input, dt float64, r core.Rasterizer) StepResult {
	theme := s.Theme()
	r.DrawRect(0, 0, s.Arena.HalfX, s.Arena.HalfY, theme.Background)
	r.DrawArenaBorders(s.Arena.HalfX, s.Arena.HalfY, theme.Accent)

	var events []Event
	if s.Mode == ModeGameplay {
		events = s.simulateGameplay(in, dt, events)
		s.drawGameplay(r)
	} else {
		events = s.simulateMenu(in, events)
		s.drawMenu(r)
	}

	return StepResult{Mode: s.Mode, Events: events}
}

// simulateGameplay runs player integration and ball resolution.
func (s *GameState) simulateGameplay(in *core.Input, dt float64, events []Event) []Event {
	var ddp1 float64
	if s.EnemyIsAI {
		ddp1 = aiAccel(s.Ball.Y, s.Paddle1.P)
	} else {
		ddp1 = humanAccel(in, core.ButtonUp, core.ButtonDown)
	}
	ddp2 := humanAccel(in, core.ButtonW, core.ButtonS)

	SimulatePlayer(&s.Paddle1.P, &s.Paddle1.DP, ddp1, dt, s.Paddle1.HalfY, s.Arena.HalfY)
	SimulatePlayer(&s.Paddle2.P, &s.Paddle2.DP, ddp2, dt, s.Paddle2.HalfY, s.Arena.HalfY)

	return s.resolveBall(dt, events)
}

// simulateMenu moves the option cursor and starts gameplay on confirm.
func (s *GameState) simulateMenu(in *core.Input, events []Event) []Event {
	if in.Pressed(core.ButtonLeft) || in.Pressed(core.ButtonRight) {
		s.HotButton = (s.HotButton + 1) % menuOptionsCount
	}
	if in.Pressed(core.ButtonEnter) {
		s.Mode = ModeGameplay
		s.EnemyIsAI = s.HotButton == menuOptionAI
		events = append(events, Event{Kind: EventModeChanged})
	}
	return events
}

// drawGameplay draws scores, ball and paddles in the current accent,
// which already reflects a point scored this frame.
func (s *GameState) drawGameplay(r core.Rasterizer) {
	accent := s.Theme().Accent
	r.DrawNumber(s.Score1, score1X, scoreY, 1, accent)
	r.DrawNumber(s.Score2, score2X, scoreY, 1, accent)
	r.DrawRect(s.Ball.X, s.Ball.Y, s.Ball.Half, s.Ball.Half, accent)
	r.DrawRect(Side1.paddleX(), s.Paddle1.P, s.Paddle1.HalfX, s.Paddle1.HalfY, accent)
	r.DrawRect(Side2.paddleX(), s.Paddle2.P, s.Paddle2.HalfX, s.Paddle2.HalfY, accent)
}

// drawMenu draws the title and both options, highlighting the cursor.
func (s *GameState) drawMenu(r core.Rasterizer) {
	humanColor, aiColor := menuNotSelected, menuSelected
	if s.HotButton == menuOptionHuman {
		humanColor, aiColor = menuSelected, menuNotSelected
	}
	r.DrawText("SINGLE", menuHumanX, menuOptionY, 1, humanColor)
	r.DrawText("AI", menuAIX, menuOptionY, 1, aiColor)
	r.DrawText("PONG", menuTitleX, menuTitleY, menuTitleSize, menuTitleColor)
}
