package components

import (
	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current tick's Pressed state
	Previous [cfg.ActionCount]bool // Previous tick's Pressed state
}

// Pressed reports whether the action is held this tick.
func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether the action went down this tick.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

// DirectionX resolves left/right into -1, 0 or 1.
func (in *InputData) DirectionX() float64 {
	return gamemath.HorizontalDirection(in.Pressed(cfg.ActionMoveLeft), in.Pressed(cfg.ActionMoveRight))
}

var Input = donburi.NewComponentType[InputData]()
