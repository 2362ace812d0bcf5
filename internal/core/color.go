package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit pixel color.
type Color struct {
	R, G, B uint8
}

// FromFloat converts [0, 1] channels to a Color. Out-of-range values are
// clamped.
func FromFloat(r, g, b float32) Color {
	cr, cg, cb := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Clamped().RGB255()
	return Color{R: cr, G: cg, B: cb}
}

// FromColor converts any image color, undoing premultiplied alpha. A fully
// transparent color becomes black.
func FromColor(c color.Color) Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
