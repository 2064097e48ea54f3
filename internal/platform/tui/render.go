package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color, so one cell shows two pixel rows.
const upperHalf = "▀"

// cellColors is the pixel pair behind one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// Renderer converts a framebuffer to styled terminal lines. It caches one
// lipgloss style per color pair. A Renderer is not safe for concurrent use.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellColors]lipgloss.Style
}

// NewRenderer returns a renderer that styles with lg, or with the default
// lipgloss renderer when lg is nil. SSH sessions pass a per-session
// renderer so color support follows the client terminal.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg, styles: make(map[cellColors]lipgloss.Style)}
}

// style returns the cached style for a pixel pair.
func (r *Renderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	r.styles[c] = s
	return s
}

// Render converts the framebuffer to one line per two pixel rows.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(fb *core.Framebuffer) string {
	w, h := fb.Width(), fb.Height()
	rows := (h + 1) / 2

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		// Framebuffer row 0 is the top of the screen.
		yTop, yBottom := row*2, row*2+1

		x := 0
		for x < w {
			start := cellColors{top: fb.Get(x, yTop), bottom: fb.Get(x, yBottom)}

			n := 0
			for x < w {
				c := cellColors{top: fb.Get(x, yTop), bottom: fb.Get(x, yBottom)}
				if c != start {
					break
				}
				n++
				x++
			}

			sb.WriteString(r.style(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}
