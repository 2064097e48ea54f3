package core

import "testing"

func TestInputEdges(t *testing.T) {
	var in Input

	in.BeginFrame()
	in.Process(ButtonEnter, true)
	if !in.Pressed(ButtonEnter) {
		t.Error("first down frame should be a pressed edge")
	}
	if !in.IsDown(ButtonEnter) {
		t.Error("button should be down")
	}

	in.BeginFrame()
	in.Process(ButtonEnter, true)
	if in.Pressed(ButtonEnter) {
		t.Error("held button should not repeat the pressed edge")
	}
	if !in.IsDown(ButtonEnter) {
		t.Error("held button should stay down")
	}

	in.BeginFrame()
	in.Process(ButtonEnter, false)
	if !in.Released(ButtonEnter) {
		t.Error("up frame should be a released edge")
	}
	if in.Pressed(ButtonEnter) || in.IsDown(ButtonEnter) {
		t.Error("released button should not be down")
	}

	in.BeginFrame()
	if in.Released(ButtonEnter) {
		t.Error("BeginFrame should clear the released edge")
	}
}

func TestInputTapWithinOneFrame(t *testing.T) {
	var in Input
	in.BeginFrame()
	in.Process(ButtonW, true)
	in.Process(ButtonW, false)

	if in.IsDown(ButtonW) || in.Pressed(ButtonW) || !in.Released(ButtonW) {
		t.Errorf("press then release in one frame should read as released, got %+v", in.Buttons[ButtonW])
	}

	in.BeginFrame()
	in.Process(ButtonW, false)
	if in.Released(ButtonW) {
		t.Error("staying up should not repeat the released edge")
	}
}

func TestInputProcessIgnoresUnknownButton(t *testing.T) {
	var in Input
	in.Process(ButtonCount, true) // Should not panic
	in.Process(Button(-1), true)  // Should not panic
	if in.Pack() != 0 {
		t.Errorf("unknown buttons should not change state, got %b", in.Pack())
	}
}

func TestInputPackUnpack(t *testing.T) {
	var in Input
	in.Process(ButtonUp, true)
	in.Process(ButtonS, true)
	in.BeginFrame()
	in.Process(ButtonS, false)
	in.Process(ButtonEnter, true)

	bits := in.Pack()
	out := UnpackInput(bits)
	if out != in {
		t.Errorf("UnpackInput(Pack()) = %+v, expected %+v", out, in)
	}

	// Every bit is meaningful.
	all := UnpackInput(1<<(2*int(ButtonCount)) - 1)
	for b := range ButtonCount {
		if !all.IsDown(b) || !all.Buttons[b].Changed {
			t.Errorf("button %s should be down and changed", b)
		}
	}
}

func TestParseButton(t *testing.T) {
	for b := range ButtonCount {
		got, ok := ParseButton(b.String())
		if !ok || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, ok)
		}
	}
	if _, ok := ParseButton("space"); ok {
		t.Error("ParseButton should reject unknown names")
	}
}
