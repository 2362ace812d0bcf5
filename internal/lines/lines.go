// Package lines stores drawn strokes as independent line segments and
// tessellates them into capsule meshes for rendering.
package lines

import (
	"github.com/vovakirdan/starline/internal/zmath"
)

const (
	// LineRadius is the half-width of every drawn stroke. Collision and
	// erasing both treat segments as capsules of this radius.
	LineRadius = 0.01

	// MinPointDistance is the decimation threshold: a new sample closer than
	// this to the last recorded point is dropped.
	MinPointDistance = 0.01
)

// Lines is a polyline store driven by pen-down/move/up events.
// Points come in pairs: (2i, 2i+1) is one segment.
type Lines struct {
	points  []zmath.Vector3
	last    zmath.Vector3
	drawing bool
	dirty   bool
	mesh    Mesh
}

// New creates an empty buffer.
func New() *Lines {
	return &Lines{}
}

// Stroke starts a stroke at p if none is active, otherwise appends the
// segment (last, p) when p is far enough from the last recorded point.
func (l *Lines) Stroke(p zmath.Vector3) {
	p.Z = 0
	l.dirty = true
	if !l.drawing {
		l.last = p
		l.drawing = true
		return
	}
	if zmath.Distance(l.last, p) <= MinPointDistance {
		return
	}
	l.points = append(l.points, l.last, p)
	l.last = p
}

// EndStroke lifts the pen. Segments already added are kept.
func (l *Lines) EndStroke() {
	l.drawing = false
}

// Drawing reports whether a stroke is active.
func (l *Lines) Drawing() bool {
	return l.drawing
}

// Erase removes every segment closer than radius + LineRadius to center.
// Removal swaps the last segment into the hole, so segment order changes.
func (l *Lines) Erase(center zmath.Vector3, radius float32) int {
	removed := 0
	// Walk backwards so a segment swapped into slot i has already been tested.
	for i := len(l.points)/2 - 1; i >= 0; i-- {
		dist, _ := zmath.PointSegment(center, l.points[2*i], l.points[2*i+1])
		if dist >= radius+LineRadius {
			continue
		}
		last := len(l.points) - 2
		l.points[2*i], l.points[2*i+1] = l.points[last], l.points[last+1]
		l.points = l.points[:last]
		removed++
	}
	if removed > 0 {
		l.dirty = true
	}
	return removed
}

// Clear removes all segments and ends the active stroke.
func (l *Lines) Clear() {
	l.points = l.points[:0]
	l.drawing = false
	l.dirty = true
}

// Points returns the segment endpoints. Callers must not modify the slice.
func (l *Lines) Points() []zmath.Vector3 {
	return l.points
}

// SegmentCount returns the number of stored segments.
func (l *Lines) SegmentCount() int {
	return len(l.points) / 2
}

// NeedsRemesh reports whether geometry changed since the last Mesh call.
func (l *Lines) NeedsRemesh() bool {
	return l.dirty
}

// Mesh returns the tessellated segments. The mesh is rebuilt only when
// geometry changed since the previous call.
func (l *Lines) Mesh() Mesh {
	if l.dirty {
		l.mesh = LineMesh(l.points, LineRadius, zmath.Forward)
		l.dirty = false
	}
	return l.mesh
}
