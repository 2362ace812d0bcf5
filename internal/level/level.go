// Package level holds the per-level gameplay model: the start position,
// line colors and the collectible stars placed by playback or the editor.
package level

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/starline/internal/zmath"
)

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB255 builds an opaque color from 8-bit channels.
func RGB255(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// WithAlpha returns c with the alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// NRGBA converts c to an 8-bit color with its alpha scaled by alpha.
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().RGB255()
	a := min(max(float64(c.A)*alpha, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Palette defaults used when a level does not specify colors.
var (
	White             = Color{1, 1, 1, 1}
	DefaultLineColor  = RGB255(138, 132, 170)
	DefaultUserColor  = RGB255(88, 65, 226)
	DefaultBackground = RGB255(19, 12, 61)
)

// Collectible tuning.
const (
	CollectibleRadius = 0.015
	collectedAlpha    = 0.1
	collectibleFadeIn = 0.04
)

// Collectible is a star the ball picks up by touching it.
type Collectible struct {
	Position  zmath.Vector3
	Radius    float32
	Color     Color
	Alpha     float32 // Visual only
	Collected bool
}

// NewCollectible creates an uncollected star at position with the given
// starting alpha (0 fades in, 1 appears immediately).
func NewCollectible(position zmath.Vector3, alpha float32) Collectible {
	return Collectible{
		Position: position,
		Radius:   CollectibleRadius,
		Color:    White,
		Alpha:    alpha,
	}
}

// Level is the mutable state of the level being played.
type Level struct {
	StartPosition zmath.Vector3
	LineColor     Color
	UserLineColor Color
	Collectibles  []Collectible
	Collected     int
	Complete      bool

	// Setup is set once the reveal has finished and the ball has been placed
	// at the start position. Until then the ball cannot be released.
	Setup bool
}

// New creates an empty level.
func New(start zmath.Vector3, lineColor, userLineColor Color) *Level {
	return &Level{
		StartPosition: start,
		LineColor:     lineColor,
		UserLineColor: userLineColor,
	}
}

// AddCollectible appends a collectible.
func (l *Level) AddCollectible(c Collectible) {
	l.Collectibles = append(l.Collectibles, c)
}

// Collect adds amount to the collected total and marks the level complete
// once every collectible has been picked up.
func (l *Level) Collect(amount int) {
	l.Collected += amount
	if l.Collected >= len(l.Collectibles) {
		l.Complete = true
	}
}

// Remaining returns how many collectibles are still uncollected.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Collectibles {
		if !l.Collectibles[i].Collected {
			n++
		}
	}
	return n
}

// Reset un-collects everything so the attempt can start over.
func (l *Level) Reset() {
	l.Collected = 0
	for i := range l.Collectibles {
		l.Collectibles[i].Collected = false
	}
	l.Complete = false
}

// Clear removes all collectibles and completion state.
func (l *Level) Clear() {
	l.Collectibles = l.Collectibles[:0]
	l.Reset()
}

// FadeIn advances collectible alpha animation by one frame.
// Uncollected stars fade towards full opacity; collected ones stay dim.
func (l *Level) FadeIn() {
	for i := range l.Collectibles {
		c := &l.Collectibles[i]
		if c.Collected {
			c.Alpha = collectedAlpha
			continue
		}
		c.Alpha += collectibleFadeIn
		if c.Alpha > 1 {
			c.Alpha = 1
		}
	}
}
