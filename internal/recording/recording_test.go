package recording

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

const frameDT = 1.0 / 60

// playSession drives a live game with random input, recording each frame.
func playSession(seed int64, frames int) (*pong.GameState, *Recorder) {
	rng := rand.New(rand.NewSource(seed))
	state := pong.NewGameState()
	rec := &Recorder{}
	var in core.Input

	for i := range frames {
		in.BeginFrame()
		in.Process(core.ButtonRight, i == 1)
		in.Process(core.ButtonEnter, i == 3)
		in.Process(core.ButtonUp, rng.Intn(4) == 0)
		in.Process(core.ButtonS, rng.Intn(4) == 0)
		dt := frameDT + float64(rng.Intn(5))/1000
		rec.Add(&in, dt)
		state.Simulate(&in, dt, core.Discard)
	}
	return state, rec
}

func TestReplayMatchesLiveSession(t *testing.T) {
	live, rec := playSession(7, 5000)

	data, err := Encode(rec.Frames())
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	frames, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	got := Replay(frames)
	want := live.Snapshot()
	if got != want {
		t.Errorf("replay diverged:\n got %+v\nwant %+v", got, want)
	}
	if got.Hash() != want.Hash() {
		t.Error("replay hash differs from live hash")
	}
	if got.Mode != pong.ModeGameplay || got.EnemyIsAI {
		t.Errorf("expected the recorded human game, got %+v", got)
	}
}

func TestReplayerSteps(t *testing.T) {
	_, rec := playSession(3, 10)
	r := NewReplayer(rec.Frames())

	steps := 0
	for !r.Done() {
		if r.NextDT() <= 0 {
			t.Fatal("NextDT should be positive before the end")
		}
		if _, ok := r.Step(core.Discard); !ok {
			t.Fatal("Step returned false before Done")
		}
		steps++
	}
	if steps != 10 {
		t.Errorf("stepped %d frames, expected 10", steps)
	}
	if _, ok := r.Step(core.Discard); ok {
		t.Error("Step should return false after the last frame")
	}
	if pos, total := r.Position(); pos != total {
		t.Errorf("position = %d/%d at the end", pos, total)
	}
	if r.NextDT() != 0 {
		t.Error("NextDT should be zero when done")
	}
}

func TestReplayEmpty(t *testing.T) {
	got := Replay(nil)
	if got != pong.NewGameState().Snapshot() {
		t.Error("replaying nothing should yield the initial state")
	}
}

func TestDecodeErrors(t *testing.T) {
	empty, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}
	if _, err := Decode(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("Decode(empty) = %v, expected ErrEmpty", err)
	}
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("Decode(garbage) should fail")
	}
}

func TestRecorderDuration(t *testing.T) {
	var rec Recorder
	var in core.Input
	for range 120 {
		rec.Add(&in, 0.5)
	}
	if rec.Len() != 120 {
		t.Errorf("Len() = %d, expected 120", rec.Len())
	}
	if rec.Duration() != time.Minute {
		t.Errorf("Duration() = %v, expected 1m", rec.Duration())
	}

	rec.Reset()
	if rec.Len() != 0 || rec.Duration() != 0 {
		t.Error("Reset should drop all frames")
	}
}

func TestFramePreservesInput(t *testing.T) {
	var in core.Input
	in.Process(core.ButtonW, true)
	in.BeginFrame()
	in.Process(core.ButtonEnter, true)

	var rec Recorder
	rec.Add(&in, frameDT)
	got := rec.Frames()[0].Input()

	if got != in {
		t.Errorf("frame input = %+v, expected %+v", got, in)
	}
}
