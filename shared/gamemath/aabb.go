// Package gamemath holds the pure collision and motion math shared by every
// host. It has no dependencies on ebitengine or resolv.
package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// AABB is an axis-aligned box given by its centre and half extents.
type AABB struct {
	Center     math2.Vec2
	HalfExtent math2.Vec2
}

// NewAABB builds a box from centre and half extents.
func NewAABB(center, halfExtent math2.Vec2) AABB {
	return AABB{Center: center, HalfExtent: halfExtent}
}

// Min returns the top-left corner (Y grows downward).
func (b AABB) Min() math2.Vec2 {
	return math2.Vec2{X: b.Center.X - b.HalfExtent.X, Y: b.Center.Y - b.HalfExtent.Y}
}

// Max returns the bottom-right corner.
func (b AABB) Max() math2.Vec2 {
	return math2.Vec2{X: b.Center.X + b.HalfExtent.X, Y: b.Center.Y + b.HalfExtent.Y}
}

// Intersects reports whether the two boxes overlap. Intervals are closed, so
// boxes that only share an edge intersect.
func (b AABB) Intersects(o AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin.X <= oMax.X && oMin.X <= bMax.X &&
		bMin.Y <= oMax.Y && oMin.Y <= bMax.Y
}

// ClosestPoint clamps p into the box on each axis.
func (b AABB) ClosestPoint(p math2.Vec2) math2.Vec2 {
	lo, hi := b.Min(), b.Max()
	return math2.Vec2{
		X: ClampFloat(p.X, lo.X, hi.X),
		Y: ClampFloat(p.Y, lo.Y, hi.Y),
	}
}

// Overlap returns the per-axis interval overlap of two boxes. Both components
// are >= 0 when the boxes intersect; touching boxes overlap by zero.
func (b AABB) Overlap(o AABB) math2.Vec2 {
	return math2.Vec2{
		X: b.HalfExtent.X + o.HalfExtent.X - math.Abs(b.Center.X-o.Center.X),
		Y: b.HalfExtent.Y + o.HalfExtent.Y - math.Abs(b.Center.Y-o.Center.Y),
	}
}

// Penetration is the depth along the shallower axis.
func (b AABB) Penetration(o AABB) float64 {
	ov := b.Overlap(o)
	return math.Min(ov.X, ov.Y)
}

// ClampFloat clamps v into [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
