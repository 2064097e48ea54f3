package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// SimulatePlayer integrates one paddle for dt seconds under acceleration
// ddp, then keeps it inside the arena. Hitting an edge snaps the paddle
// back and throws it the other way at twice the speed.
func SimulatePlayer(p, dp *float64, ddp, dt, halfY, arenaHalfY float64) {
	ddp -= *dp * Drag

	*p = *p + *dp*dt + ddp*dt*dt*.5
	*dp = *dp + ddp*dt

	if *p+halfY > arenaHalfY {
		*p = arenaHalfY - halfY
		*dp *= WallPushBack
	} else if *p-halfY < -arenaHalfY {
		*p = -arenaHalfY + halfY
		*dp *= WallPushBack
	}
}

// humanAccel maps two held direction buttons to a fixed acceleration.
// Holding both cancels out.
func humanAccel(in *core.Input, up, down core.Button) float64 {
	var ddp float64
	if in.IsDown(up) {
		ddp += HumanAccel
	}
	if in.IsDown(down) {
		ddp -= HumanAccel
	}
	return ddp
}

// aiAccel steers a paddle toward the ball's height.
func aiAccel(ballY, paddleY float64) float64 {
	return core.ClampF((ballY-paddleY)*AIGain, -AIMaxAccel, AIMaxAccel)
}

// ballBox returns the ball's bounding box.
func (s *GameState) ballBox() core.AABB {
	return core.AABB{X: s.Ball.X, Y: s.Ball.Y, HalfW: s.Ball.Half, HalfH: s.Ball.Half}
}

// paddleBox returns a side's bounding box.
func (s *GameState) paddleBox(side Side) core.AABB {
	p := s.paddle(side)
	return core.AABB{X: side.paddleX(), Y: p.P, HalfW: p.HalfX, HalfH: p.HalfY}
}

// bounceOffPaddle resolves a ball/paddle overlap. The ball is placed flush
// with the paddle's front edge and leaves with spin taken from where it
// hit and how fast the paddle was moving.
func (s *GameState) bounceOffPaddle(side Side) bool {
	if !s.ballBox().Overlaps(s.paddleBox(side)) {
		return false
	}
	p := s.paddle(side)
	b := &s.Ball
	b.X = side.paddleX() + side.facing()*(p.HalfX+b.Half)
	b.DX *= -1
	b.DY = (b.Y-p.P)*SpinOffsetGain + p.DP*SpinVelocityGain
	return true
}

// bounceOffWalls reflects the ball off the top and bottom edges.
func (s *GameState) bounceOffWalls() bool {
	b := &s.Ball
	if b.Y+b.Half > s.Arena.HalfY {
		b.Y = s.Arena.HalfY - b.Half
		b.DY *= -1
		return true
	}
	if b.Y-b.Half < -s.Arena.HalfY {
		b.Y = -s.Arena.HalfY + b.Half
		b.DY *= -1
		return true
	}
	return false
}

// outOfBounds reports which side scores when the ball leaves the arena
// horizontally. Leaving on the right scores for side 1.
func (s *GameState) outOfBounds() Side {
	b := &s.Ball
	if b.X+b.Half > s.Arena.HalfX {
		return Side1
	}
	if b.X-b.Half < -s.Arena.HalfX {
		return Side2
	}
	return SideNone
}

// awardPoint applies a score event for side and reports whether the
// opponent's paddle shrank.
func (s *GameState) awardPoint(side Side) (shrunk bool) {
	b := &s.Ball
	b.DX *= -1
	b.DY = 0
	b.X, b.Y = 0, 0

	n := s.score(side)
	*n++
	if !s.EnemyIsAI && *n > ShrinkAfterScores {
		loser := s.paddle(side.Opponent())
		if loser.HalfY > MinPaddleHalfY {
			loser.HalfY = max(loser.HalfY-PaddleShrinkStep, MinPaddleHalfY)
			shrunk = true
		}
	}

	s.PaletteIndex = (s.PaletteIndex + 1) % len(Palette)
	return shrunk
}

// resolveBall moves the ball and applies collisions and scoring in a fixed
// order: side 1 paddle, else side 2 paddle, then walls, then scoring.
func (s *GameState) resolveBall(dt float64, events []Event) []Event {
	s.Ball.X += s.Ball.DX * dt
	s.Ball.Y += s.Ball.DY * dt

	if s.bounceOffPaddle(Side1) {
		events = append(events, Event{Kind: EventPaddleHit, Side: Side1})
	} else if s.bounceOffPaddle(Side2) {
		events = append(events, Event{Kind: EventPaddleHit, Side: Side2})
	}

	if s.bounceOffWalls() {
		events = append(events, Event{Kind: EventWallBounce})
	}

	if side := s.outOfBounds(); side != SideNone {
		shrunk := s.awardPoint(side)
		events = append(events, Event{Kind: EventScored, Side: side})
		if shrunk {
			events = append(events, Event{Kind: EventPaddleShrunk, Side: side.Opponent()})
		}
	}
	return events
}
