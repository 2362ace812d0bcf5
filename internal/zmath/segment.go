package zmath

// PointSegment returns the distance from p to the segment [a, b] and the
// closest point on the segment.
//
// The projection parameter is clamped to [0, 1]. A zero-length segment
// degenerates to the distance from p to a.
func PointSegment(p, a, b Vector3) (float32, Vector3) {
	dist, closest, _ := PointSegmentOK(p, a, b)
	return dist, closest
}

// PointSegmentOK is PointSegment that also reports whether the segment has a
// usable direction. Callers that derive a normal from the result should skip
// the segment when ok is false.
func PointSegmentOK(p, a, b Vector3) (dist float32, closest Vector3, ok bool) {
	ba := b.Sub(a)
	denom := Dot(ba, ba)
	if denom == 0 {
		return Distance(p, a), a, false
	}
	h := Clamp(Dot(ba, p.Sub(a))/denom, 0, 1)
	closest = a.Add(ba.Scale(h))
	return Distance(p, closest), closest, true
}
