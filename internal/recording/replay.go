package recording

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Replayer steps a fresh game through recorded frames one at a time, so a
// frontend can show a recording at its original pace.
type Replayer struct {
	state  *pong.GameState
	frames []Frame
	next   int
	input  core.Input
}

// NewReplayer starts a replay from the initial game state.
func NewReplayer(frames []Frame) *Replayer {
	return &Replayer{state: pong.NewGameState(), frames: frames}
}

// Done reports whether every frame has been simulated.
func (r *Replayer) Done() bool {
	return r.next >= len(r.frames)
}

// Position returns the index of the next frame and the total count.
func (r *Replayer) Position() (int, int) {
	return r.next, len(r.frames)
}

// State returns the game being replayed.
func (r *Replayer) State() *pong.GameState {
	return r.state
}

// NextDT returns the dt of the frame Step will simulate next, or zero
// when the replay is done.
func (r *Replayer) NextDT() float64 {
	if r.Done() {
		return 0
	}
	return r.frames[r.next].DT
}

// Step simulates the next frame, drawing to rast. It returns false once
// the recording is exhausted.
func (r *Replayer) Step(rast core.Rasterizer) (pong.StepResult, bool) {
	if r.Done() {
		return pong.StepResult{Mode: r.state.Mode}, false
	}
	f := r.frames[r.next]
	r.next++
	r.input = f.Input()
	return r.state.Simulate(&r.input, f.DT, rast), true
}

// Replay runs every frame without drawing and returns the final state.
func Replay(frames []Frame) pong.Snapshot {
	r := NewReplayer(frames)
	for {
		if _, ok := r.Step(core.Discard); !ok {
			break
		}
	}
	return r.state.Snapshot()
}
