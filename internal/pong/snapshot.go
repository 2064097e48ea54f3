package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot contains the complete state of a game.
// Uses primitive types only for stable comparison and logging.
type Snapshot struct {
	Paddle1P     float64
	Paddle1DP    float64
	Paddle1HalfY float64
	Paddle2P     float64
	Paddle2DP    float64
	Paddle2HalfY float64
	BallX        float64
	BallY        float64
	BallDX       float64
	BallDY       float64
	Score1       int
	Score2       int
	PaletteIndex int
	Mode         Mode
	HotButton    int
	EnemyIsAI    bool
}

// Snapshot returns the current game state as a Snapshot.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Paddle1P:     s.Paddle1.P,
		Paddle1DP:    s.Paddle1.DP,
		Paddle1HalfY: s.Paddle1.HalfY,
		Paddle2P:     s.Paddle2.P,
		Paddle2DP:    s.Paddle2.DP,
		Paddle2HalfY: s.Paddle2.HalfY,
		BallX:        s.Ball.X,
		BallY:        s.Ball.Y,
		BallDX:       s.Ball.DX,
		BallDY:       s.Ball.DY,
		Score1:       s.Score1,
		Score2:       s.Score2,
		PaletteIndex: s.PaletteIndex,
		Mode:         s.Mode,
		HotButton:    s.HotButton,
		EnemyIsAI:    s.EnemyIsAI,
	}
}

// Hash returns an FNV-64a digest over the exact bit patterns of every
// field. Two replays of the same frames must produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash writes never fail
	}

	for _, f := range []float64{
		s.Paddle1P, s.Paddle1DP, s.Paddle1HalfY,
		s.Paddle2P, s.Paddle2DP, s.Paddle2HalfY,
		s.BallX, s.BallY, s.BallDX, s.BallDY,
	} {
		put(math.Float64bits(f))
	}
	for _, n := range []int{s.Score1, s.Score2, s.PaletteIndex, int(s.Mode), s.HotButton} {
		put(uint64(n)) //nolint:gosec // sign is irrelevant for hashing
	}
	if s.EnemyIsAI {
		put(1)
	} else {
		put(0)
	}
	return h.Sum64()
}
