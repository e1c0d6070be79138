package systems

import (
	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/yohamta/donburi"
)

// InputSource answers "is this action held right now". The host owns the
// devices and key bindings; the core only sees logical actions.
type InputSource interface {
	IsActionPressed(action cfg.ActionID) bool
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func(action cfg.ActionID) bool

func (f InputFunc) IsActionPressed(action cfg.ActionID) bool {
	return f(action)
}

// UpdateInput polls source and updates the actor's InputComponent.
// Must run BEFORE UpdateMotion in the tick order.
func UpdateInput(actor *donburi.Entry, source InputSource) {
	input := components.Input.Get(actor)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if source == nil {
		return
	}
	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		input.Current[action] = source.IsActionPressed(action)
	}
}
