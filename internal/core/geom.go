// Package core provides the terminal framebuffer: a pixel Screen that
// holds two vertically stacked pixels per terminal cell, and the colors
// stored in it. It has no dependency on Bubble Tea so drawing stays
// testable.
package core

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles, which may be empty.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Contains reports whether pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
