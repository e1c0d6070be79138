package components

import (
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ActorData is the one controllable entity's motion state. Position is the
// box centre in world space (Y grows downward).
type ActorData struct {
	Position      math2.Vec2
	HalfExtent    math2.Vec2 // always > 0 on both axes
	Velocity      math2.Vec2 // changed only by gravity and collision resolution
	MovementSpeed float64    // fixed at creation

	// IsResting is set by the previous tick's collision resolution and
	// suppresses gravity for the current tick.
	IsResting bool
}

// Bounds returns the actor's collision box.
func (a *ActorData) Bounds() gamemath.AABB {
	return gamemath.NewAABB(a.Position, a.HalfExtent)
}

var Actor = donburi.NewComponentType[ActorData]()
