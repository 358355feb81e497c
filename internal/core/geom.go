// Package core holds the terminal-free building blocks of the blaster: the
// screen buffer, palette slots, input actions and playfield geometry. It has
// no dependency on Bubble Tea so the simulation stays testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	return min(a, b)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	return max(a, b)
}
