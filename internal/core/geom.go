// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer, cell-aligned rectangle used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is an axis-aligned bounding box in world units.
// Y grows downward, so Top < Bottom for a non-empty box.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Overlaps reports whether two boxes share interior area.
// Edge-touching boxes do not overlap.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.Left < other.Right &&
		b.Top < other.Bottom &&
		b.Right > other.Left &&
		b.Bottom > other.Top
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
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
