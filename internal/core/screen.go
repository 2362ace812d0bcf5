package core

import "image"

// Screen is a pixel buffer sized for half-block terminal output: every
// terminal cell shows two vertically stacked pixels, so Height is twice the
// row count. Rendering and styling are left to the platform.
type Screen struct {
	width  int
	height int
	pixels []Color
}

// NewScreen creates a width x height pixel buffer filled with black.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Rows returns the number of terminal rows needed to show the screen.
func (s *Screen) Rows() int {
	return (s.height + 1) / 2
}

// Bounds returns the drawable area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions. Content is discarded since every frame is
// redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.pixels != nil {
		return
	}
	s.width = width
	s.height = height
	s.pixels = make([]Color, width*height)
}

// Clear fills the entire screen with c.
func (s *Screen) Clear(c Color) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.pixels[y*s.width+x] = c
}

// Load copies img into the screen, aligning the image's top-left corner
// with pixel (0, 0). Pixels outside the overlap are left unchanged.
func (s *Screen) Load(img image.Image) {
	b := img.Bounds()
	area := s.Bounds().Intersect(NewRect(0, 0, b.Dx(), b.Dy()))
	if area.Empty() {
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		row := s.pixels[y*s.width:]
		for x := area.X; x < area.Right(); x++ {
			row[x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
}

// Get returns a pixel, or the zero Color out of bounds.
func (s *Screen) Get(x, y int) Color {
	if !s.Bounds().Contains(x, y) {
		return Color{}
	}
	return s.pixels[y*s.width+x]
}

// Cell returns the top and bottom pixel shown by terminal cell (col, row).
// A missing bottom pixel on odd heights repeats the top one.
func (s *Screen) Cell(col, row int) (top, bottom Color) {
	top = s.Get(col, row*2)
	if row*2+1 >= s.height {
		return top, top
	}
	return top, s.Get(col, row*2+1)
}
