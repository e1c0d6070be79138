package archetypes

import (
	"github.com/automoto/platformer-core/components"
	"github.com/automoto/platformer-core/tags"
	"github.com/yohamta/donburi"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Input,
	)
	Collider = newArchetype(
		tags.Collider,
		components.Collider,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Tick,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
