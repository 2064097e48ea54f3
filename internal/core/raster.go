package core

// Rasterizer receives the draw calls issued by the simulation each frame.
// Coordinates are world units: origin at the arena center, +y up.
// Calls are fire-and-forget; nothing is returned to the caller.
type Rasterizer interface {
	// DrawRect fills a box given by its center and half-extents.
	DrawRect(x, y, halfX, halfY float64, c Color)

	// DrawArenaBorders fills everything outside the arena box.
	DrawArenaBorders(arenaHalfX, arenaHalfY float64, c Color)

	// DrawText draws an upper-case string whose top-left glyph starts at (x, y).
	DrawText(text string, x, y, size float64, c Color)

	// DrawNumber draws a non-negative integer whose last digit is centered at x.
	DrawNumber(n int, x, y, size float64, c Color)
}

// Discard is a Rasterizer that draws nothing. Headless replays use it.
var Discard Rasterizer = discard{}

type discard struct{}

func (discard) DrawRect(float64, float64, float64, float64, Color) {}
func (discard) DrawArenaBorders(float64, float64, Color) {}
func (discard) DrawText(string, float64, float64, float64, Color) {}
func (discard) DrawNumber(int, float64, float64, float64, Color) {}
