package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantLines int
	}{
		{"even height", 20, 10, 5},
		{"odd height", 20, 7, 4},
		{"single row", 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := core.NewFramebuffer(tt.w, tt.h)
			fb.Fill(core.ColorWhite)
			out := NewRenderer(nil).Render(fb)

			lines := strings.Split(out, "\n")
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, expected %d", len(lines), tt.wantLines)
			}
			for i, line := range lines {
				if got := lipgloss.Width(line); got != tt.w {
					t.Errorf("line %d has width %d, expected %d", i, got, tt.w)
				}
				if strings.Count(line, upperHalf) != tt.w {
					t.Errorf("line %d should contain %d half blocks", i, tt.w)
				}
			}
		})
	}
}

func TestRenderCachesStylesPerColorPair(t *testing.T) {
	fb := core.NewFramebuffer(8, 4)
	fb.Fill(core.ColorBlack)
	fb.Set(2, 0, core.ColorRed)   // red over black
	fb.Set(5, 3, core.ColorWhite) // black over white

	r := NewRenderer(nil)
	r.Render(fb)

	if len(r.styles) != 3 {
		t.Errorf("expected 3 cached styles, got %d", len(r.styles))
	}
	want := cellColors{top: core.ColorRed, bottom: core.ColorBlack}
	if _, ok := r.styles[want]; !ok {
		t.Errorf("missing style for %+v", want)
	}
}

func TestRenderEmpty(t *testing.T) {
	fb := core.NewFramebuffer(0, 0)
	if out := NewRenderer(nil).Render(fb); out != "" {
		t.Errorf("empty framebuffer rendered %q", out)
	}
}
