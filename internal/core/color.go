package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit RGB value laid out as 0xRRGGBB.
type Color uint32

// Colors used outside the palette.
const (
	ColorBlack    Color = 0x000000
	ColorWhite    Color = 0xFFFFFF
	ColorRed      Color = 0xFF0000
	ColorDimGray  Color = 0xAAAAAA
	ColorBackdrop Color = 0x000000 // pixels outside the arena before the first border pass
)

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// Hex returns the "#rrggbb" form used by lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
