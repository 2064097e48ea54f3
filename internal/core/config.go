package core

// RuntimeConfig contains configuration passed to a frontend at startup.
// Frontends use it to size the framebuffer and pace the frame loop.
type RuntimeConfig struct {
	ScreenW  int // Framebuffer width in pixels
	ScreenH  int // Framebuffer height in pixels
	TickRate int // Frames per second requested from the platform timer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  48, // two pixel rows per terminal line
		TickRate: 60,
	}
}

// FrameDelta returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
