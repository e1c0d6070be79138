package systems

import (
	"github.com/automoto/platformer-core/components"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Integrate advances the actor by one tick of dt seconds.
//
// Gravity is skipped while the actor rests on something. Horizontal movement
// comes straight from the input direction at the actor's fixed speed and
// never touches Velocity.X. Nothing is clamped: an actor that is never caught
// keeps falling. dt must be >= 0.
func Integrate(actor *components.ActorData, dirX, gravity, dt float64) {
	if !actor.IsResting {
		var dy float64
		actor.Velocity.Y, dy = gamemath.IntegrateGravity(actor.Velocity.Y, gravity, dt)
		actor.Position.Y += dy
	}

	actor.Position.X += gamemath.HorizontalDisplacement(dirX, actor.MovementSpeed, dt)
}

// UpdateMotion integrates the actor using the input gathered this tick.
// Must run AFTER UpdateInput and BEFORE UpdateCollisions.
func UpdateMotion(actor *donburi.Entry, gravity, dt float64) {
	input := components.Input.Get(actor)
	Integrate(components.Actor.Get(actor), input.DirectionX(), gravity, dt)
}
