package lines

import (
	"math"

	"github.com/vovakirdan/starline/internal/zmath"
)

// capResolution is the number of fan triangles in each rounded end cap.
const capResolution = 4

// Tri indexes three vertices of a Mesh.
type Tri [3]uint32

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []zmath.Vector3
	Indices  []Tri
}

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Triangle returns the corners of triangle i.
func (m Mesh) Triangle(i int) (a, b, c zmath.Vector3) {
	t := m.Indices[i]
	return m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
}

// LineMesh builds a capsule per segment: a quad of width 2*radius plus two
// semicircular caps. points is read as consecutive pairs.
func LineMesh(points []zmath.Vector3, radius float32, planeNormal zmath.Vector3) Mesh {
	var m Mesh
	for i := 1; i < len(points); i += 2 {
		a, b := points[i-1], points[i]
		forward := b.Sub(a).Normal()
		right := zmath.Cross(forward, planeNormal).Normal()

		m.endCap(a, right.Scale(-radius), forward.Scale(-radius))

		start := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			a.Add(right.Scale(-radius)),
			a.Add(right.Scale(radius)),
			b.Add(right.Scale(radius)),
			b.Add(right.Scale(-radius)),
		)
		m.Indices = append(m.Indices,
			Tri{start, start + 1, start + 2},
			Tri{start, start + 2, start + 3},
		)

		m.endCap(b, right.Scale(radius), forward.Scale(radius))
	}
	return m
}

// endCap appends a half-disc fan around center spanning from -right to
// +right through forward.
func (m *Mesh) endCap(center, right, forward zmath.Vector3) {
	start := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, center.Sub(right), center.Add(right))

	step := math.Pi / float64(capResolution+1)
	angle := 0.0
	for range capResolution {
		angle += step
		v := center.
			Add(right.Scale(float32(math.Cos(angle)))).
			Add(forward.Scale(float32(math.Sin(angle))))
		next := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		m.Indices = append(m.Indices, Tri{start, next - 1, next})
	}
}

// CircleMesh builds a filled disc with the given number of sides.
func CircleMesh(center zmath.Vector3, radius float32, sides int) Mesh {
	var m Mesh
	if sides < 3 {
		sides = 3
	}
	m.Vertices = append(m.Vertices, center)
	step := 2 * math.Pi / float64(sides)
	for i := range sides {
		angle := step * float64(i)
		dir := zmath.V3(float32(math.Cos(angle)), float32(math.Sin(angle)), 0)
		m.Vertices = append(m.Vertices, center.Add(dir.Scale(radius)))
		if i > 0 {
			n := uint32(len(m.Vertices) - 1)
			m.Indices = append(m.Indices, Tri{0, n, n - 1})
		}
	}
	m.Indices = append(m.Indices, Tri{0, 1, uint32(len(m.Vertices) - 1)})
	return m
}
