package factory

import (
	"fmt"

	"github.com/automoto/platformer-core/archetypes"
	"github.com/automoto/platformer-core/components"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateActor spawns the controllable actor at rest with zero velocity.
// width and height are its visual size; the collision box is half of that.
func CreateActor(w donburi.World, position math2.Vec2, width, height, movementSpeed float64) (*donburi.Entry, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("actor size must be positive, got %gx%g", width, height)
	}

	actor := archetypes.Actor.Spawn(w)
	components.Actor.SetValue(actor, components.ActorData{
		Position:      position,
		HalfExtent:    math2.Vec2{X: width / 2, Y: height / 2},
		MovementSpeed: movementSpeed,
	})
	components.Input.SetValue(actor, components.InputData{})

	return actor, nil
}

// CreateClock spawns the entity that tracks tick timing.
func CreateClock(w donburi.World) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Tick.SetValue(clock, components.TickData{})
	return clock
}
