package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// held returns an input where the given buttons went down this frame.
func held(buttons ...core.Button) *core.Input {
	var in core.Input
	for _, b := range buttons {
		in.Process(b, true)
	}
	return &in
}

// drawCall is one recorded Rasterizer call.
type drawCall struct {
	op     string
	text   string
	n      int
	x, y   float64
	hx, hy float64
	color  core.Color
}

// recorder is a Rasterizer that remembers every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawRect(x, y, hx, hy float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, hx: hx, hy: hy, color: c})
}

func (r *recorder) DrawArenaBorders(hx, hy float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "borders", hx: hx, hy: hy, color: c})
}

func (r *recorder) DrawText(text string, x, y, size float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "text", text: text, x: x, y: y, hx: size, color: c})
}

func (r *recorder) DrawNumber(n int, x, y, size float64, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "number", n: n, x: x, y: y, hx: size, color: c})
}

func (r *recorder) find(op, text string) (drawCall, bool) {
	for _, c := range r.calls {
		if c.op == op && c.text == text {
			return c, true
		}
	}
	return drawCall{}, false
}

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	if s.Mode != ModeMenu {
		t.Errorf("initial mode = %s, expected menu", s.Mode)
	}
	if s.HotButton != 0 || s.EnemyIsAI {
		t.Errorf("initial menu state = (%d, %v), expected (0, false)", s.HotButton, s.EnemyIsAI)
	}
	if s.Ball.DX != BallSpeed || s.Ball.X != 0 || s.Ball.Y != 0 || s.Ball.DY != 0 {
		t.Errorf("initial ball = %+v, expected at rest in the center with dx %f", s.Ball, BallSpeed)
	}
	if s.Paddle1.HalfY != PaddleHalfY || s.Paddle2.HalfY != PaddleHalfY {
		t.Error("paddles should start at full height")
	}
	if s.Score1 != 0 || s.Score2 != 0 || s.PaletteIndex != 0 {
		t.Error("scores and palette should start at zero")
	}
}

func TestMenuConfirmStartsAIGame(t *testing.T) {
	s := NewGameState()

	result := s.Simulate(held(core.ButtonEnter), frameDT, core.Discard)

	if s.Mode != ModeGameplay || result.Mode != ModeGameplay {
		t.Errorf("mode = %s, expected gameplay", s.Mode)
	}
	if !s.EnemyIsAI {
		t.Error("selection 0 should enable the AI opponent")
	}
	if !result.Has(EventModeChanged) {
		t.Error("expected a mode change event")
	}
}

func TestMenuToggleSelectsHuman(t *testing.T) {
	s := NewGameState()

	s.Simulate(held(core.ButtonRight), frameDT, core.Discard)
	if s.HotButton != 1 {
		t.Fatalf("hot button = %d, expected 1 after right", s.HotButton)
	}

	// Still held next frame: no edge, no toggle
	in := held(core.ButtonRight)
	in.BeginFrame()
	in.Process(core.ButtonRight, true)
	s.Simulate(in, frameDT, core.Discard)
	if s.HotButton != 1 {
		t.Fatalf("holding right should not toggle again, hot button = %d", s.HotButton)
	}

	s.Simulate(held(core.ButtonEnter), frameDT, core.Discard)
	if s.Mode != ModeGameplay || s.EnemyIsAI {
		t.Errorf("selection 1 should start a human game, got mode %s ai %v", s.Mode, s.EnemyIsAI)
	}
}

func TestMenuLeftAndRightToggleOnce(t *testing.T) {
	s := NewGameState()
	s.Simulate(held(core.ButtonLeft, core.ButtonRight), frameDT, core.Discard)
	if s.HotButton != 1 {
		t.Errorf("left+right in one frame should toggle once, hot button = %d", s.HotButton)
	}

	s.Simulate(held(core.ButtonLeft), frameDT, core.Discard)
	if s.HotButton != 0 {
		t.Errorf("left should toggle back, hot button = %d", s.HotButton)
	}
}

func TestMenuDoesNotMoveBall(t *testing.T) {
	s := NewGameState()
	for range 60 {
		s.Simulate(held(core.ButtonUp, core.ButtonW), frameDT, core.Discard)
	}
	if s.Ball.X != 0 || s.Paddle1.P != 0 || s.Paddle2.P != 0 {
		t.Error("menu frames should not run physics")
	}
}

func TestGameplayHasNoWayBackToMenu(t *testing.T) {
	s := newGameplayState(true)
	for _, b := range []core.Button{core.ButtonEnter, core.ButtonLeft, core.ButtonRight} {
		result := s.Simulate(held(b), frameDT, core.Discard)
		if result.Mode != ModeGameplay {
			t.Fatalf("button %s left gameplay", b)
		}
	}
	if !s.EnemyIsAI {
		t.Error("AI flag should stay fixed during gameplay")
	}
}

func TestMenuDrawCalls(t *testing.T) {
	s := NewGameState()
	r := &recorder{}
	s.Simulate(&core.Input{}, frameDT, r)

	if len(r.calls) < 2 || r.calls[0].op != "rect" || r.calls[1].op != "borders" {
		t.Fatalf("frame should start with arena fill and borders, got %v", r.calls)
	}
	theme := Palette[0]
	if r.calls[0].color != theme.Background || r.calls[1].color != theme.Accent {
		t.Error("arena should use the current theme")
	}

	ai, ok := r.find("text", "AI")
	if !ok || ai.color != core.ColorRed {
		t.Errorf("AI option should be highlighted, got %+v", ai)
	}
	human, ok := r.find("text", "SINGLE")
	if !ok || human.color != core.ColorDimGray {
		t.Errorf("SINGLE option should be dimmed, got %+v", human)
	}
	if _, ok := r.find("text", "PONG"); !ok {
		t.Error("title should be drawn")
	}
}

func TestGameplayDrawCalls(t *testing.T) {
	s := newGameplayState(false)
	s.Score1, s.Score2 = 3, 4
	r := &recorder{}
	s.Simulate(&core.Input{}, frameDT, r)

	var numbers, rects int
	for _, c := range r.calls {
		switch c.op {
		case "number":
			numbers++
			if c.x == score1X && c.n != 3 || c.x == score2X && c.n != 4 {
				t.Errorf("score drawn wrong: %+v", c)
			}
		case "rect":
			rects++
		case "text":
			t.Errorf("gameplay should not draw menu text: %+v", c)
		}
	}
	if numbers != 2 {
		t.Errorf("expected 2 score numbers, got %d", numbers)
	}
	if rects != 4 { // arena, ball, two paddles
		t.Errorf("expected 4 rects, got %d", rects)
	}
}

func TestScoringFrameSwitchesAccentMidFrame(t *testing.T) {
	s := newGameplayState(true)
	s.Ball.X = 86
	r := &recorder{}
	s.Simulate(&core.Input{}, frameDT, r)

	if r.calls[0].color != Palette[0].Background {
		t.Error("arena should be drawn with the theme from the start of the frame")
	}
	last := r.calls[len(r.calls)-1]
	if last.color != Palette[1].Accent {
		t.Error("entities should be drawn with the theme after the point")
	}
}

func TestAIPaddleTracksBall(t *testing.T) {
	s := newGameplayState(true)
	s.Ball.Y = 30
	s.Ball.DX = 0

	for range 30 {
		s.Simulate(&core.Input{}, frameDT, core.Discard)
	}
	if s.Paddle1.P <= 0 {
		t.Errorf("AI paddle should move toward the ball, p = %f", s.Paddle1.P)
	}
	if s.Paddle2.P != 0 {
		t.Errorf("idle human paddle should not move, p = %f", s.Paddle2.P)
	}
}

func TestHumanPaddlesFollowInput(t *testing.T) {
	s := newGameplayState(false)
	for range 10 {
		s.Simulate(held(core.ButtonUp, core.ButtonS), frameDT, core.Discard)
	}
	if s.Paddle1.P <= 0 {
		t.Errorf("Up should move side 1 up, p = %f", s.Paddle1.P)
	}
	if s.Paddle2.P >= 0 {
		t.Errorf("S should move side 2 down, p = %f", s.Paddle2.P)
	}
}

func TestLongRunInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	buttons := []core.Button{core.ButtonUp, core.ButtonDown, core.ButtonW, core.ButtonS}

	for _, ai := range []bool{true, false} {
		s := newGameplayState(ai)
		var in core.Input
		totalScored := 0

		for frame := range 50000 {
			in.BeginFrame()
			for _, b := range buttons {
				if rng.Intn(20) == 0 {
					in.Process(b, !in.IsDown(b))
				}
			}

			before1, before2 := s.Score1, s.Score2
			beforePalette := s.PaletteIndex
			result := s.Simulate(&in, frameDT, core.Discard)

			d1, d2 := s.Score1-before1, s.Score2-before2
			if d1 < 0 || d2 < 0 {
				t.Fatalf("frame %d: score decreased", frame)
			}
			if d1+d2 > 1 {
				t.Fatalf("frame %d: both scores changed", frame)
			}
			if d1+d2 == 1 {
				totalScored++
				if !result.Has(EventScored) {
					t.Fatalf("frame %d: score changed without an event", frame)
				}
				if s.PaletteIndex != (beforePalette+1)%len(Palette) {
					t.Fatalf("frame %d: palette did not advance", frame)
				}
			}

			for _, p := range []Paddle{s.Paddle1, s.Paddle2} {
				if p.P+p.HalfY > ArenaHalfY+epsilon || p.P-p.HalfY < -ArenaHalfY-epsilon {
					t.Fatalf("frame %d: paddle out of bounds: %+v", frame, p)
				}
				if p.HalfY < MinPaddleHalfY {
					t.Fatalf("frame %d: paddle below floor: %+v", frame, p)
				}
				if ai && p.HalfY != PaddleHalfY {
					t.Fatalf("frame %d: paddle shrank in AI mode", frame)
				}
			}
			b := s.Ball
			if b.Y+b.Half > ArenaHalfY+epsilon || b.Y-b.Half < -ArenaHalfY-epsilon {
				t.Fatalf("frame %d: ball out of vertical bounds: %+v", frame, b)
			}
			if b.X+b.Half > ArenaHalfX+epsilon || b.X-b.Half < -ArenaHalfX-epsilon {
				t.Fatalf("frame %d: ball out of horizontal bounds: %+v", frame, b)
			}
			if s.PaletteIndex < 0 || s.PaletteIndex >= len(Palette) {
				t.Fatalf("frame %d: palette index %d out of range", frame, s.PaletteIndex)
			}
		}

		if totalScored == 0 {
			t.Errorf("ai=%v: expected at least one point in a long run", ai)
		}
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		rng := rand.New(rand.NewSource(seed))
		s := NewGameState()
		var in core.Input
		for frame := range 3000 {
			in.BeginFrame()
			in.Process(core.ButtonEnter, frame == 5)
			in.Process(core.ButtonRight, frame == 2)
			in.Process(core.ButtonW, rng.Intn(3) == 0)
			in.Process(core.ButtonUp, rng.Intn(3) == 0)
			s.Simulate(&in, frameDT, core.Discard)
		}
		return s.Snapshot()
	}

	a, b := run(1), run(1)
	if a != b || a.Hash() != b.Hash() {
		t.Errorf("same inputs produced different snapshots:\n%+v\n%+v", a, b)
	}
	if a.Mode != ModeGameplay || a.EnemyIsAI {
		t.Errorf("expected a human game to have started, got %+v", a)
	}

	c := run(2)
	if a.Hash() == c.Hash() {
		t.Error("different inputs should produce different hashes")
	}
}

func TestSnapshotHashCoversFields(t *testing.T) {
	base := NewGameState().Snapshot()
	mutations := []func(*Snapshot){
		func(s *Snapshot) { s.Paddle1P = 1 },
		func(s *Snapshot) { s.Paddle2HalfY = 3 },
		func(s *Snapshot) { s.BallDY = -0.5 },
		func(s *Snapshot) { s.Score2 = 1 },
		func(s *Snapshot) { s.PaletteIndex = 4 },
		func(s *Snapshot) { s.Mode = ModeGameplay },
		func(s *Snapshot) { s.EnemyIsAI = true },
	}

	for i, mutate := range mutations {
		s := base
		mutate(&s)
		if s.Hash() == base.Hash() {
			t.Errorf("mutation %d did not change the hash", i)
		}
	}
}
