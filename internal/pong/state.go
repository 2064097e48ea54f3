// Package pong implements the two-paddle ball game simulation.
// The right paddle (side 1) is driven by Up/Down or by the AI, the left
// paddle (side 2) by W/S. A frame is advanced with GameState.Simulate.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Arena and entity geometry, in world units.
const (
	ArenaHalfX = 85.0
	ArenaHalfY = 45.0

	PaddleOffsetX    = 80.0 // distance of each paddle from the vertical midline
	PaddleHalfX      = 2.5
	PaddleHalfY      = 12.0
	MinPaddleHalfY   = 3.0
	PaddleShrinkStep = 2.0

	BallHalf  = 1.0
	BallSpeed = 130.0
)

// Player and ball dynamics.
const (
	Drag              = 10.0
	HumanAccel        = 2000.0
	AIGain            = 100.0
	AIMaxAccel        = 1300.0
	WallPushBack      = -2.0 // paddle velocity factor on hitting the arena edge
	SpinOffsetGain    = 2.0
	SpinVelocityGain  = 0.75
	ShrinkAfterScores = 5 // the scorer's count must exceed this before the loser shrinks
)

// Side identifies a paddle and the score it owns.
type Side int

const (
	SideNone Side = iota
	Side1         // right paddle, x = +PaddleOffsetX
	Side2         // left paddle, x = -PaddleOffsetX
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case Side1:
		return "side1"
	case Side2:
		return "side2"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return SideNone
	}
}

// paddleX returns the fixed horizontal position of a side's paddle.
func (s Side) paddleX() float64 {
	if s == Side1 {
		return PaddleOffsetX
	}
	return -PaddleOffsetX
}

// facing is the direction from the paddle toward the arena center.
func (s Side) facing() float64 {
	if s == Side1 {
		return -1
	}
	return 1
}

// Mode selects which branch of the frame update runs.
type Mode int

const (
	ModeMenu Mode = iota
	ModeGameplay
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// Theme is one palette entry: arena background and the accent used for
// borders, paddles, ball and scores.
type Theme struct {
	Background core.Color
	Accent     core.Color
}

// Palette is cycled one entry per point scored.
var Palette = []Theme{
	{Background: 0x1F1F1F, Accent: 0xFFFFFF}, // dark grey / white
	{Background: 0x001F3F, Accent: 0xFF4136}, // navy / bright red
	{Background: 0x0A0A0A, Accent: 0x00FF00}, // almost black / green
	{Background: 0x112233, Accent: 0x88C0D0}, // dark slate / light cyan
	{Background: 0x2E3440, Accent: 0xBF616A}, // nordic grey / muted red
	{Background: 0x282828, Accent: 0xA3BE8C}, // graphite / forest green
	{Background: 0x3B4252, Accent: 0xD08770}, // soft black / burnt orange
	{Background: 0x4C566A, Accent: 0xEBCB8B}, // stormy grey / golden yellow
	{Background: 0x5E81AC, Accent: 0x81A1C1}, // sky blue / pastel blue
	{Background: 0x242424, Accent: 0xECEFF4}, // charcoal / frosty white
}

// Paddle is a vertical bar that only moves along y.
type Paddle struct {
	P     float64 // center y
	DP    float64 // velocity along y
	HalfX float64
	HalfY float64
}

// Ball is a square box with a fixed half-size.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Half   float64
}

// Arena is the static play field, centered on the origin.
type Arena struct {
	HalfX, HalfY float64
}

// GameState is everything the simulation owns. It is created once per
// session and mutated only by Simulate.
type GameState struct {
	Arena   Arena
	Paddle1 Paddle // Side1
	Paddle2 Paddle // Side2
	Ball    Ball
	Score1  int
	Score2  int

	PaletteIndex int

	Mode      Mode
	HotButton int  // menu cursor: 0 = AI opponent, 1 = human opponent
	EnemyIsAI bool // fixed when gameplay starts
}

// NewGameState returns the state at process start: menu mode, ball at
// rest in the center with its serve velocity, full-size paddles.
func NewGameState() *GameState {
	return &GameState{
		Arena:   Arena{HalfX: ArenaHalfX, HalfY: ArenaHalfY},
		Paddle1: Paddle{HalfX: PaddleHalfX, HalfY: PaddleHalfY},
		Paddle2: Paddle{HalfX: PaddleHalfX, HalfY: PaddleHalfY},
		Ball:    Ball{DX: BallSpeed, Half: BallHalf},
		Mode:    ModeMenu,
	}
}

// Theme returns the palette entry under the cursor.
func (s *GameState) Theme() Theme {
	return Palette[s.PaletteIndex]
}

// paddle returns the paddle owned by side.
func (s *GameState) paddle(side Side) *Paddle {
	if side == Side1 {
		return &s.Paddle1
	}
	return &s.Paddle2
}

// score returns the counter owned by side.
func (s *GameState) score(side Side) *int {
	if side == Side1 {
		return &s.Score1
	}
	return &s.Score2
}
