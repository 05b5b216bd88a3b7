package core

import "testing"

func TestBoundsOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 5, Top: 5, Right: 15, Bottom: 15},
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 15, Top: 0, Right: 25, Bottom: 10},
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 0, Top: 15, Right: 10, Bottom: 25},
			expected: false,
		},
		{
			name:     "edge touching horizontal (no overlap)",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 10, Top: 0, Right: 20, Bottom: 10},
			expected: false,
		},
		{
			name:     "edge touching vertical (no overlap)",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 0, Top: 10, Right: 10, Bottom: 20},
			expected: false,
		},
		{
			name:     "fully nested",
			a:        Bounds{Left: 0, Top: 0, Right: 20, Bottom: 20},
			b:        Bounds{Left: 5, Top: 5, Right: 10, Bottom: 10},
			expected: true,
		},
		{
			name:     "fractional sliver",
			a:        Bounds{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:        Bounds{Left: 9.99, Top: 9.99, Right: 12, Bottom: 12},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsSize(t *testing.T) {
	b := Bounds{Left: 2, Top: 3, Right: 10, Bottom: 12}
	if b.Width() != 8 {
		t.Errorf("Width() = %v, expected 8", b.Width())
	}
	if b.Height() != 9 {
		t.Errorf("Height() = %v, expected 9", b.Height())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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
