// Package recording captures the per-frame input of a session and replays
// it through the simulation. Only input is stored; everything else,
// including the score, is recomputed on replay.
package recording

import (
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrEmpty is returned when decoding a blob that holds no frames.
var ErrEmpty = errors.New("recording: no frames")

// Frame is one simulated step: the packed input snapshot and the dt it
// was simulated with.
type Frame struct {
	Buttons uint16  `msgpack:"b"`
	DT      float64 `msgpack:"dt"`
}

// Input expands the packed buttons back into a snapshot.
func (f Frame) Input() core.Input {
	return core.UnpackInput(f.Buttons)
}

// Recorder appends frames as a session runs. The zero value is ready to
// use. A Recorder is not safe for concurrent use.
type Recorder struct {
	frames []Frame
}

// Add records the input and dt of one step.
func (r *Recorder) Add(in *core.Input, dt float64) {
	r.frames = append(r.frames, Frame{Buttons: in.Pack(), DT: dt})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frames returns the recorded frames. The slice is shared with the
// recorder.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Duration returns the total simulated time.
func (r *Recorder) Duration() time.Duration {
	return Duration(r.frames)
}

// Reset drops all recorded frames.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}

// Duration sums the dt of every frame.
func Duration(frames []Frame) time.Duration {
	var total float64
	for _, f := range frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Encode serializes frames into the msgpack blob stored in the database.
func Encode(frames []Frame) ([]byte, error) {
	data, err := msgpack.Marshal(frames)
	if err != nil {
		return nil, fmt.Errorf("recording: encode: %w", err)
	}
	return data, nil
}

// Decode parses a blob produced by Encode.
func Decode(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := msgpack.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("recording: decode: %w", err)
	}
	if len(frames) == 0 {
		return nil, ErrEmpty
	}
	return frames, nil
}
