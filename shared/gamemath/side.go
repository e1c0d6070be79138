package gamemath

import "math"

// Side is the face of a collider the actor struck.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	}
	return "Side(?)"
}

// Contact is the outcome of one tick's detection. It is never stored across ticks.
type Contact struct {
	Side  Side
	Index int     // position of the struck collider in the sequence passed to Detect
	Depth float64 // penetration along the shallower axis, 0 when only touching
}

// ClassifySide decides which face of collider the actor struck. The caller
// must already know the boxes intersect.
//
// The offset from the collider's closest point to the actor centre picks the
// axis: horizontal only when it strictly dominates, so ties fall to the
// vertical faces. When the centre is on or inside the collider the offset
// vanishes and the axis of least overlap is used instead.
func ClassifySide(actor, collider AABB) Side {
	closest := collider.ClosestPoint(actor.Center)
	ox := actor.Center.X - closest.X
	oy := actor.Center.Y - closest.Y

	if ox == 0 && oy == 0 {
		ov := actor.Overlap(collider)
		dx := actor.Center.X - collider.Center.X
		dy := actor.Center.Y - collider.Center.Y
		if ov.X < ov.Y {
			return horizontalSide(dx)
		}
		return verticalSide(dy)
	}

	if math.Abs(ox) > math.Abs(oy) {
		return horizontalSide(ox)
	}
	return verticalSide(oy)
}

func horizontalSide(dx float64) Side {
	if dx < 0 {
		return SideLeft
	}
	return SideRight
}

// Y grows downward: a negative offset means the actor is above the collider.
func verticalSide(dy float64) Side {
	if dy < 0 {
		return SideTop
	}
	return SideBottom
}

// Detect tests actor against every collider and returns at most one contact.
// When several colliders overlap, the deepest penetration wins and equal
// depths keep the earliest collider in the sequence.
func Detect(actor AABB, colliders []AABB) (Contact, bool) {
	var best Contact
	found := false

	for i, c := range colliders {
		if !actor.Intersects(c) {
			continue
		}
		depth := actor.Penetration(c)
		if found && depth <= best.Depth {
			continue
		}
		best = Contact{Side: ClassifySide(actor, c), Index: i, Depth: depth}
		found = true
	}

	return best, found
}
