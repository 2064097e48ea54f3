// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation and rendering logic pure and testable.
package core

// AABB is an axis-aligned box described by its center and half-extents.
type AABB struct {
	X, Y         float64 // center
	HalfW, HalfH float64
}

// Overlaps reports whether two boxes overlap on both axes.
// Touching edges do not count as overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.X+a.HalfW > b.X-b.HalfW &&
		a.X-a.HalfW < b.X+b.HalfW &&
		a.Y+a.HalfH > b.Y-b.HalfH &&
		a.Y-a.HalfH < b.Y+b.HalfH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
