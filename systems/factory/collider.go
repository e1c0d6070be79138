package factory

import (
	"github.com/automoto/platformer-core/archetypes"
	"github.com/automoto/platformer-core/components"
	"github.com/automoto/platformer-core/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateCollider registers a static obstacle centred at position. order is
// its registration index and must be unique per world.
func CreateCollider(w donburi.World, spaceEntry *donburi.Entry, position, halfExtent math2.Vec2, order int) *donburi.Entry {
	collider := archetypes.Collider.Spawn(w)

	components.Collider.SetValue(collider, components.ColliderData{
		Position:   position,
		HalfExtent: halfExtent,
		Order:      order,
	})

	// Create broad-phase proxy, inflated like the probe so that boxes smaller
	// than a cell still register in at least one cell
	space := components.Space.Get(spaceEntry)
	x, y := space.ToSpace(position.X-halfExtent.X-space.Margin.X, position.Y-halfExtent.Y-space.Margin.Y)
	obj := resolv.NewObject(x, y,
		halfExtent.X*2+space.Margin.X*2,
		halfExtent.Y*2+space.Margin.Y*2,
		tags.ResolvCollider)
	obj.Data = collider // Link for O(1) lookup

	components.Object.SetValue(collider, components.ObjectData{Object: obj})
	space.Add(obj)

	return collider
}
