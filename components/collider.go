package components

import (
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ColliderData is a static obstacle. It is never mutated after creation.
type ColliderData struct {
	Position   math2.Vec2
	HalfExtent math2.Vec2
	Order      int // registration index, used for deterministic ordering
}

// Bounds returns the collider's box.
func (c *ColliderData) Bounds() gamemath.AABB {
	return gamemath.NewAABB(c.Position, c.HalfExtent)
}

var Collider = donburi.NewComponentType[ColliderData]()
