// Package physics integrates the ball against line-segment geometry.
//
// Collision is a penalty response, not a solver: each segment is tested once
// per step and any remaining penetration is corrected over later frames.
package physics

import (
	"github.com/vovakirdan/starline/internal/level"
	"github.com/vovakirdan/starline/internal/lines"
	"github.com/vovakirdan/starline/internal/zmath"
)

// Tuning constants. All values are per frame; there is no delta time.
const (
	BallRadius = 0.06

	Gravity = 0.0001

	// Bounce scales the removed normal velocity. Values above 1 reflect part
	// of the incoming speed.
	Bounce = 1.4

	// SinkTolerance lets the ball rest slightly inside a line.
	SinkTolerance = 0.001

	// ContactNudge pushes the ball out along the contact normal on every hit.
	ContactNudge = 0.0001

	// GroundedFrames is how long a contact counts as recent.
	GroundedFrames = 10

	resetAlpha = 0.1
	alphaStep  = 0.015
)

// Bounds is the playable region. The ball resets when its center leaves it.
// There is no upper bound on Y.
type Bounds struct {
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	MinY float32 `yaml:"min_y"`
}

// DefaultBounds is the band used by levels that do not specify one.
var DefaultBounds = Bounds{MinX: -1, MaxX: 3, MinY: 0}

// Ball is the player ball.
type Ball struct {
	Position zmath.Vector3
	Velocity zmath.Vector3
	Radius   float32
	Color    level.Color
	Alpha    float32 // Visual only

	// Moving is false while the ball waits at the start position.
	Moving bool

	grounded int
}

// NewBall creates a resting ball at start.
func NewBall(start zmath.Vector3) *Ball {
	return &Ball{
		Position: start,
		Radius:   BallRadius,
		Color:    level.White,
		Alpha:    1,
	}
}

// Step advances the ball by one frame. Segment sets are collided in order,
// each as a flat list of endpoint pairs.
func (b *Ball) Step(segmentSets ...[]zmath.Vector3) {
	b.grounded--
	b.Velocity = b.Velocity.Add(zmath.Down.Scale(Gravity))

	for _, points := range segmentSets {
		b.collide(points)
	}
	b.Position = b.Position.Add(b.Velocity)
}

func (b *Ball) collide(points []zmath.Vector3) {
	limit := b.Radius + lines.LineRadius - SinkTolerance
	for i := 1; i < len(points); i += 2 {
		dist, closest, ok := zmath.PointSegmentOK(b.Position, points[i-1], points[i])
		if !ok || dist >= limit {
			continue
		}

		normal := b.Position.Sub(closest).Normal()
		vn := zmath.Dot(normal, b.Velocity)
		if vn < 0 {
			b.Velocity = b.Velocity.Sub(normal.Scale(vn * Bounce))
		}
		b.grounded = GroundedFrames
		b.Position = b.Position.Add(normal.Scale(ContactNudge))
	}
}

// CheckCollectibles collects every uncollected star the ball overlaps.
// It reports whether anything was collected and the height of the highest one,
// and applies the count to lvl. Calling it again without moving is a no-op.
func (b *Ball) CheckCollectibles(lvl *level.Level) (bool, float32) {
	count := 0
	var height float32
	for i := range lvl.Collectibles {
		c := &lvl.Collectibles[i]
		if c.Collected {
			continue
		}
		if zmath.Distance(b.Position, c.Position) < b.Radius+c.Radius {
			c.Collected = true
			c.Alpha = 0.1
			if count == 0 || c.Position.Y > height {
				height = c.Position.Y
			}
			count++
		}
	}
	if count == 0 {
		return false, 0
	}
	lvl.Collect(count)
	return true, height
}

// OutOfBounds reports whether the ball has left the playable region.
func (b *Ball) OutOfBounds(bounds Bounds) bool {
	p := b.Position
	return p.X < bounds.MinX || p.X > bounds.MaxX || p.Y < bounds.MinY
}

// Reset returns the ball to start and stops it. A ball that was moving
// fades back in.
func (b *Ball) Reset(start zmath.Vector3) {
	if b.Moving {
		b.Alpha = resetAlpha
	}
	b.Moving = false
	b.Position = start
	b.Velocity = zmath.Zero
}

// Launch releases the ball from the start position.
func (b *Ball) Launch(start zmath.Vector3) {
	b.Reset(start)
	b.Moving = true
}

// Speed returns the velocity magnitude per frame.
func (b *Ball) Speed() float32 {
	return b.Velocity.Length()
}

// Grounded reports whether the ball touched a line in the last
// GroundedFrames steps.
func (b *Ball) Grounded() bool {
	return b.grounded > 0
}

// FadeIn advances the ball's alpha by one frame.
func (b *Ball) FadeIn() {
	if b.Alpha < 1 {
		b.Alpha += alphaStep
	}
	if b.Alpha > 1 {
		b.Alpha = 1
	}
}
