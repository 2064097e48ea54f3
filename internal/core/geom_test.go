package core

import "testing"

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        AABB{X: 0, Y: 0, HalfW: 5, HalfH: 5},
			b:        AABB{X: 4, Y: 4, HalfW: 5, HalfH: 5},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        AABB{X: 0, Y: 0, HalfW: 5, HalfH: 5},
			b:        AABB{X: 20, Y: 0, HalfW: 5, HalfH: 5},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        AABB{X: 0, Y: 0, HalfW: 5, HalfH: 5},
			b:        AABB{X: 0, Y: 20, HalfW: 5, HalfH: 5},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        AABB{X: 0, Y: 0, HalfW: 5, HalfH: 5},
			b:        AABB{X: 10, Y: 0, HalfW: 5, HalfH: 5},
			expected: false,
		},
		{
			name:     "contained box",
			a:        AABB{X: 0, Y: 0, HalfW: 10, HalfH: 10},
			b:        AABB{X: 1, Y: -1, HalfW: 1, HalfH: 1},
			expected: true,
		},
		{
			name:     "ball against paddle front",
			a:        AABB{X: 80.17, Y: 0, HalfW: 1, HalfH: 1},
			b:        AABB{X: 80, Y: 0, HalfW: 2.5, HalfH: 12},
			expected: true,
		},
		{
			name:     "ball just outside paddle reach",
			a:        AABB{X: 84, Y: 0, HalfW: 1, HalfH: 1},
			b:        AABB{X: 80, Y: 0, HalfW: 2.5, HalfH: 12},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
