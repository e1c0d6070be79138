package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/automoto/platformer-core/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions detects the actor's contact for this tick, resolves it and
// publishes a CollisionEvent when one was found. Detection always sees the
// position UpdateMotion just produced; overshoot is left for the next tick.
func UpdateCollisions(w donburi.World, actorEntry, spaceEntry *donburi.Entry) (gamemath.Contact, bool) {
	actor := components.Actor.Get(actorEntry)

	contact, collider, ok := DetectContact(actor, spaceEntry)
	if !Resolve(actor, contact, ok) {
		return contact, false
	}

	if cfg.Debug.LogCollisions {
		debugContact(actor, contact, collider)
	}
	components.CollisionEvent.Publish(w, components.CollisionEventData{})

	return contact, true
}

// DetectContact finds at most one contact between the actor and the colliders
// registered in the space. Candidates come from the broad phase and are tested
// exactly in registration order. It does not modify the actor.
func DetectContact(actor *components.ActorData, spaceEntry *donburi.Entry) (gamemath.Contact, *donburi.Entry, bool) {
	space := components.Space.Get(spaceEntry)
	bounds := actor.Bounds()

	candidates := broadPhase(space, bounds)
	if len(candidates) == 0 {
		return gamemath.Contact{}, nil, false
	}

	boxes := make([]gamemath.AABB, len(candidates))
	for i, e := range candidates {
		boxes[i] = components.Collider.Get(e).Bounds()
	}

	contact, ok := gamemath.Detect(bounds, boxes)
	if !ok {
		return gamemath.Contact{}, nil, false
	}
	return contact, candidates[contact.Index], true
}

// broadPhase moves the probe over the actor's box, inflated by one cell so
// that colliders touching an edge are never missed, and returns the collider
// entries sharing cells with it sorted by registration order.
func broadPhase(space *components.SpaceData, bounds gamemath.AABB) []*donburi.Entry {
	lo := bounds.Min()
	probe := space.Probe

	probe.X, probe.Y = space.ToSpace(lo.X-space.Margin.X, lo.Y-space.Margin.Y)
	probe.W = bounds.HalfExtent.X*2 + space.Margin.X*2
	probe.H = bounds.HalfExtent.Y*2 + space.Margin.Y*2
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvCollider)
	if check == nil {
		return nil
	}

	objects := check.ObjectsByTags(tags.ResolvCollider)
	entries := make([]*donburi.Entry, 0, len(objects))
	for _, obj := range objects {
		if e, ok := obj.Data.(*donburi.Entry); ok {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return components.Collider.Get(entries[i]).Order < components.Collider.Get(entries[j]).Order
	})
	return entries
}

// Resolve applies a detection result to the actor and reports whether a
// collision notification must be raised.
//
// Without a contact the actor stops resting and its velocity is untouched.
// With one it rests, and the velocity component pointing into the struck face
// is zeroed. Nothing bounces and the position is never corrected.
func Resolve(actor *components.ActorData, contact gamemath.Contact, ok bool) bool {
	if !ok {
		actor.IsResting = false
		return false
	}

	actor.IsResting = true

	switch contact.Side {
	case gamemath.SideLeft:
		if actor.Velocity.X > 0 {
			actor.Velocity.X = 0
		}
	case gamemath.SideRight:
		if actor.Velocity.X < 0 {
			actor.Velocity.X = 0
		}
	case gamemath.SideTop:
		// Y grows downward: falling onto the top face
		if actor.Velocity.Y > 0 {
			actor.Velocity.Y = 0
		}
	case gamemath.SideBottom:
		if actor.Velocity.Y < 0 {
			actor.Velocity.Y = 0
		}
	default:
		panic(fmt.Sprintf("systems: unknown contact side %d", contact.Side))
	}

	return true
}

func debugContact(actor *components.ActorData, contact gamemath.Contact, collider *donburi.Entry) {
	order := -1
	if collider != nil {
		order = components.Collider.Get(collider).Order
	}
	log.Printf("[collision] side=%s collider=%d depth=%.3f pos=(%.2f, %.2f) vel=(%.2f, %.2f)",
		contact.Side, order, contact.Depth,
		actor.Position.X, actor.Position.Y, actor.Velocity.X, actor.Velocity.Y)
}
