package core

// Button is one of the fixed set of keys the game understands.
// Platforms map physical keys onto buttons; the simulation only sees buttons.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonW
	ButtonS
	ButtonLeft
	ButtonRight
	ButtonEnter

	ButtonCount // number of buttons, not a button
)

// String returns the config name of the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonW:
		return "w"
	case ButtonS:
		return "s"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// ParseButton returns the button with the given config name.
func ParseButton(name string) (Button, bool) {
	for b := range ButtonCount {
		if b.String() == name {
			return b, true
		}
	}
	return 0, false
}

// ButtonState is the per-frame state of a single button.
type ButtonState struct {
	IsDown  bool // held at the end of the frame
	Changed bool // the last Process call flipped IsDown
}

// Input is the snapshot handed to the simulation once per frame.
// IsDown carries across frames; Changed is cleared by BeginFrame and set
// by Process.
type Input struct {
	Buttons [ButtonCount]ButtonState
}

// BeginFrame clears the change flags. Platforms call it before feeding
// the new frame's key events through Process.
func (in *Input) BeginFrame() {
	for i := range in.Buttons {
		in.Buttons[i].Changed = false
	}
}

// Process records a key event for a button. Changed is set when isDown
// differs from the state left by the previous call, which may be in the
// same frame: a press and release within one frame reads as Released.
func (in *Input) Process(b Button, isDown bool) {
	if b < 0 || b >= ButtonCount {
		return
	}
	s := &in.Buttons[b]
	s.Changed = isDown != s.IsDown
	s.IsDown = isDown
}

// IsDown reports whether the button is held.
func (in *Input) IsDown(b Button) bool {
	return in.Buttons[b].IsDown
}

// Pressed reports a down edge this frame.
func (in *Input) Pressed(b Button) bool {
	return in.Buttons[b].IsDown && in.Buttons[b].Changed
}

// Released reports an up edge this frame.
func (in *Input) Released(b Button) bool {
	return !in.Buttons[b].IsDown && in.Buttons[b].Changed
}

// Pack encodes the snapshot in two bits per button:
// bit 2n is IsDown, bit 2n+1 is Changed.
func (in *Input) Pack() uint16 {
	var bits uint16
	for i, s := range in.Buttons {
		if s.IsDown {
			bits |= 1 << (2 * i)
		}
		if s.Changed {
			bits |= 1 << (2*i + 1)
		}
	}
	return bits
}

// UnpackInput is the inverse of Pack.
func UnpackInput(bits uint16) Input {
	var in Input
	for i := range in.Buttons {
		in.Buttons[i].IsDown = bits&(1<<(2*i)) != 0
		in.Buttons[i].Changed = bits&(1<<(2*i+1)) != 0
	}
	return in
}
