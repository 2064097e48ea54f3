package core

import (
	"image"
	"math"
	"unicode"
)

// Framebuffer is a software pixel buffer that implements Rasterizer.
// It decouples the simulation from the display: the game draws in world
// units and each platform blits the pixels however it can.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
}

var _ Rasterizer = (*Framebuffer)(nil)

// NewFramebuffer creates a black framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.allocate(width, height)
	return fb
}

// allocate creates the underlying pixel storage.
func (fb *Framebuffer) allocate(width, height int) {
	fb.width = max(width, 0)
	fb.height = max(height, 0)
	fb.pixels = make([]Color, fb.width*fb.height)
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Resize changes the dimensions, preserving content where possible.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.width && height == fb.height {
		return
	}

	old := fb.pixels
	oldW, oldH := fb.width, fb.height
	fb.allocate(width, height)

	copyW := min(oldW, fb.width)
	copyH := min(oldH, fb.height)
	for y := range copyH {
		copy(fb.pixels[y*fb.width:y*fb.width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// Get returns one pixel, or black for out-of-bounds coordinates.
func (fb *Framebuffer) Get(x, y int) Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return ColorBlack
	}
	return fb.pixels[y*fb.width+x]
}

// Scale returns pixels per world unit. A 100-unit tall, 180-unit wide
// window of the world always fits.
func (fb *Framebuffer) Scale() float64 {
	return math.Min(float64(fb.height)/100, float64(fb.width)/180)
}

// pixelBox converts a world-space box to a half-open pixel range.
// The range may extend past the buffer; fill clips it. A box with
// positive extent always covers at least one pixel per axis.
func (fb *Framebuffer) pixelBox(x, y, halfX, halfY float64) (x0, y0, x1, y1 int) {
	s := fb.Scale()
	cx := float64(fb.width) / 2
	cy := float64(fb.height) / 2

	toX := func(v float64) int { return int(math.Floor(ClampF(v, -1, float64(fb.width)+1))) }
	toY := func(v float64) int { return int(math.Floor(ClampF(v, -1, float64(fb.height)+1))) }

	x0, x1 = toX(cx+(x-halfX)*s), toX(cx+(x+halfX)*s)
	y0, y1 = toY(cy-(y+halfY)*s), toY(cy-(y-halfY)*s)
	if x1 == x0 && halfX > 0 {
		x1++
	}
	if y1 == y0 && halfY > 0 {
		y1++
	}
	return x0, y0, x1, y1
}

// fill paints the half-open pixel range [x0,x1) x [y0,y1).
func (fb *Framebuffer) fill(x0, y0, x1, y1 int, c Color) {
	x0, x1 = Clamp(x0, 0, fb.width), Clamp(x1, 0, fb.width)
	y0, y1 = Clamp(y0, 0, fb.height), Clamp(y1, 0, fb.height)
	for y := y0; y < y1; y++ {
		row := fb.pixels[y*fb.width : (y+1)*fb.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// DrawRect fills a world-space box.
func (fb *Framebuffer) DrawRect(x, y, halfX, halfY float64, c Color) {
	x0, y0, x1, y1 := fb.pixelBox(x, y, halfX, halfY)
	fb.fill(x0, y0, x1, y1, c)
}

// DrawArenaBorders fills the four bands around the arena box.
func (fb *Framebuffer) DrawArenaBorders(arenaHalfX, arenaHalfY float64, c Color) {
	x0, y0, x1, y1 := fb.pixelBox(0, 0, arenaHalfX, arenaHalfY)
	fb.fill(0, 0, fb.width, y0, c)
	fb.fill(0, y1, fb.width, fb.height, c)
	fb.fill(0, y0, x0, y1, c)
	fb.fill(x1, y0, fb.width, y1, c)
}

// DrawText draws text with the 5x7 font. Each font cell is size world
// units square; (x, y) is the center of the first glyph's top-left cell.
// Characters without a glyph leave a gap.
func (fb *Framebuffer) DrawText(text string, x, y, size float64, c Color) {
	half := size * 0.5
	for _, r := range text {
		if glyph, ok := letterGlyphs[unicode.ToUpper(r)]; ok {
			for row, line := range glyph {
				for col, cell := range line {
					if cell != '#' {
						continue
					}
					fb.DrawRect(x+float64(col)*size, y-float64(row)*size, half, half, c)
				}
			}
		}
		x += glyphAdvance * size
	}
}

// DrawNumber draws n with the 3x5 digit font, right to left, so that the
// last digit is centered on (x, y). Negative values draw their magnitude.
func (fb *Framebuffer) DrawNumber(n int, x, y, size float64, c Color) {
	if n < 0 {
		n = -n
	}
	half := size * 0.5
	for {
		glyph := digitGlyphs[n%10]
		for row, line := range glyph {
			for col, cell := range line {
				if cell != '#' {
					continue
				}
				fb.DrawRect(x+float64(col-1)*size, y+float64(2-row)*size, half, half, c)
			}
		}
		n /= 10
		if n == 0 {
			break
		}
		x -= digitAdvance * size
	}
}

// CopyRGBA writes the pixels as 8-bit RGBA into dst, which must hold at
// least 4*Width*Height bytes. It returns the number of bytes written.
func (fb *Framebuffer) CopyRGBA(dst []byte) int {
	n := min(len(dst)/4, len(fb.pixels))
	for i := range n {
		p := fb.pixels[i]
		dst[i*4+0] = p.R()
		dst[i*4+1] = p.G()
		dst[i*4+2] = p.B()
		dst[i*4+3] = 0xFF
	}
	return n * 4
}

// Image returns a copy of the framebuffer as an image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.CopyRGBA(img.Pix)
	return img
}
