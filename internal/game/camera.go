package game

import (
	"github.com/vovakirdan/starline/internal/zmath"
)

// Camera maps between screen pixels and world space. The world origin is
// the bottom-left of the view and y spans [0, 2]; x spans 2*aspect centered
// on 1.
type Camera struct {
	Projection zmath.Matrix4x4
	View       zmath.Matrix4x4

	invProjection zmath.Matrix4x4
	invView       zmath.Matrix4x4

	Width, Height int
}

// NewCamera creates a camera for a width x height pixel screen.
func NewCamera(width, height int) *Camera {
	c := &Camera{}
	c.setView(zmath.FromTRS(zmath.V3(-1, -1, 0), zmath.QuatIdentity, zmath.Uniform(1)))
	c.Resize(width, height)
	return c
}

// Resize updates the projection for a new screen size. Non-positive sizes
// are clamped to 1.
func (c *Camera) Resize(width, height int) {
	c.Width = max(width, 1)
	c.Height = max(height, 1)
	ar := c.Aspect()
	c.Projection = zmath.Orthographic(-ar, ar, -1, 1, 0, 1)
	c.invProjection, _ = c.Projection.Inverse()
}

func (c *Camera) setView(view zmath.Matrix4x4) {
	c.View = view
	c.invView, _ = view.Inverse()
}

// Aspect returns width / height.
func (c *Camera) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// ScreenToWorld converts a pixel position to a world point with z = 0.
func (c *Camera) ScreenToWorld(x, y float32) zmath.Vector3 {
	ndc := zmath.V3(
		x/float32(c.Width)*2-1,
		(1-y/float32(c.Height))*2-1,
		0,
	)
	p := c.invView.TransformPoint(c.invProjection.TransformPoint(ndc))
	p.Z = 0
	return p
}

// WorldToScreen converts a world point to pixel coordinates.
func (c *Camera) WorldToScreen(p zmath.Vector3) (float32, float32) {
	ndc := c.Projection.TransformPoint(c.View.TransformPoint(p))
	x := (ndc.X + 1) / 2 * float32(c.Width)
	y := (1 - (ndc.Y+1)/2) * float32(c.Height)
	return x, y
}

// WorldBounds returns the visible world rectangle.
func (c *Camera) WorldBounds() (minX, minY, maxX, maxY float32) {
	ar := c.Aspect()
	return 1 - ar, 0, 1 + ar, 2
}
