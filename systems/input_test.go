package systems

import (
	"testing"

	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/stretchr/testify/assert"
)

type heldKeys map[cfg.ActionID]bool

func (h heldKeys) IsActionPressed(action cfg.ActionID) bool {
	return h[action]
}

func TestUpdateInputDirection(t *testing.T) {
	_, actorEntry, _ := newTestWorld(t, vec(0, 0))
	input := components.Input.Get(actorEntry)

	tests := []struct {
		name string
		keys heldKeys
		want float64
	}{
		{"neither", heldKeys{}, 0},
		{"left", heldKeys{cfg.ActionMoveLeft: true}, -1},
		{"right", heldKeys{cfg.ActionMoveRight: true}, 1},
		{"both cancel", heldKeys{cfg.ActionMoveLeft: true, cfg.ActionMoveRight: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			UpdateInput(actorEntry, tt.keys)
			assert.Equal(t, tt.want, input.DirectionX())
		})
	}
}

func TestUpdateInputSwapsBuffers(t *testing.T) {
	_, actorEntry, _ := newTestWorld(t, vec(0, 0))
	input := components.Input.Get(actorEntry)

	UpdateInput(actorEntry, heldKeys{cfg.ActionMoveLeft: true})
	assert.True(t, input.JustPressed(cfg.ActionMoveLeft))

	UpdateInput(actorEntry, heldKeys{cfg.ActionMoveLeft: true})
	assert.True(t, input.Pressed(cfg.ActionMoveLeft))
	assert.False(t, input.JustPressed(cfg.ActionMoveLeft))
}

func TestUpdateInputNilSource(t *testing.T) {
	_, actorEntry, _ := newTestWorld(t, vec(0, 0))
	input := components.Input.Get(actorEntry)

	UpdateInput(actorEntry, heldKeys{cfg.ActionMoveRight: true})
	UpdateInput(actorEntry, nil)

	assert.False(t, input.Pressed(cfg.ActionMoveRight))
	assert.True(t, input.Previous[cfg.ActionMoveRight])
	assert.Equal(t, 0.0, input.DirectionX())
}
