// Package simulation owns the world and runs the per-tick motion and
// collision pipeline. Hosts (the ebiten window, the headless loop) drive it
// with Tick and read snapshots back for drawing.
package simulation

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/automoto/platformer-core/shared/leveldata"
	"github.com/automoto/platformer-core/systems"
	"github.com/automoto/platformer-core/systems/factory"
	"github.com/automoto/platformer-core/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

var (
	ErrNoActor        = errors.New("level defines no actor spawn")
	ErrMultipleActors = errors.New("level defines more than one actor spawn")
)

// Options selects the constants and the layout a simulation starts with.
type Options struct {
	Window   cfg.Config
	Physics  cfg.PhysicsConfig
	Actor    cfg.ActorConfig
	Platform cfg.PlatformConfig
	Space    cfg.SpaceConfig

	// Level replaces the default single-platform layout when set.
	Level *leveldata.CollisionData

	// Input may be nil, in which case no action is ever held.
	Input systems.InputSource
}

// DefaultOptions snapshots the global configuration.
func DefaultOptions() Options {
	return Options{
		Window:   *cfg.C,
		Physics:  cfg.Physics,
		Actor:    cfg.Actor,
		Platform: cfg.Platform,
		Space:    cfg.Space,
	}
}

// Layout is the starting arrangement of a world.
type Layout struct {
	ActorStart math2.Vec2
	Colliders  []gamemath.AABB
}

// DefaultLayout drops the actor from the top centre of the window onto one
// platform below the window centre.
func DefaultLayout(window cfg.Config, platform cfg.PlatformConfig) Layout {
	cx := float64(window.Width) / 2
	return Layout{
		ActorStart: math2.Vec2{X: cx, Y: 0},
		Colliders: []gamemath.AABB{
			gamemath.NewAABB(
				math2.Vec2{X: cx, Y: float64(window.Height)/2 + platform.OffsetY},
				math2.Vec2{X: platform.Width / 2, Y: platform.Height / 2},
			),
		},
	}
}

// LevelLayout converts parsed level data. A level must name exactly one actor.
func LevelLayout(level *leveldata.CollisionData) (Layout, error) {
	switch n := len(level.ActorSpawns); {
	case n == 0:
		return Layout{}, ErrNoActor
	case n > 1:
		return Layout{}, fmt.Errorf("%w: found %d", ErrMultipleActors, n)
	}

	spawn := level.ActorSpawns[0]
	layout := Layout{
		ActorStart: math2.Vec2{X: spawn.X, Y: spawn.Y},
		Colliders:  make([]gamemath.AABB, 0, len(level.Colliders)),
	}
	for _, r := range level.Colliders {
		layout.Colliders = append(layout.Colliders, gamemath.NewAABB(
			math2.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2},
			math2.Vec2{X: r.W / 2, Y: r.H / 2},
		))
	}
	return layout, nil
}

// Simulation is the root of one world. It holds the actor handle directly;
// nothing looks the actor up by query.
type Simulation struct {
	world   donburi.World
	actor   *donburi.Entry
	space   *donburi.Entry
	clock   *donburi.Entry
	input   systems.InputSource
	gravity float64
}

// New builds a world from opts. Gravity is fixed for the simulation's lifetime.
func New(opts Options) (*Simulation, error) {
	layout := DefaultLayout(opts.Window, opts.Platform)
	if opts.Level != nil {
		var err error
		if layout, err = LevelLayout(opts.Level); err != nil {
			return nil, fmt.Errorf("level layout: %w", err)
		}
	}
	return NewWithLayout(opts, layout)
}

// NewWithLayout builds a world from an explicit layout, ignoring opts.Level.
func NewWithLayout(opts Options, layout Layout) (*Simulation, error) {
	world := donburi.NewWorld()

	spaceEntry := factory.CreateSpace(world, layout.Colliders, opts.Space.CellWidth, opts.Space.CellHeight)
	for i, c := range layout.Colliders {
		factory.CreateCollider(world, spaceEntry, c.Center, c.HalfExtent, i)
	}

	actor, err := factory.CreateActor(world, layout.ActorStart,
		opts.Actor.Width, opts.Actor.Height, opts.Actor.MovementSpeed)
	if err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	log.Printf("[simulation] world ready: %d colliders, actor at (%.1f, %.1f), gravity %.2f",
		len(layout.Colliders), layout.ActorStart.X, layout.ActorStart.Y, opts.Physics.Gravity)

	s := &Simulation{
		world:   world,
		actor:   actor,
		space:   spaceEntry,
		clock:   factory.CreateClock(world),
		input:   opts.Input,
		gravity: opts.Physics.Gravity,
	}
	s.OnCollision(func() {
		components.Tick.Get(s.clock).Collisions++
	})
	return s, nil
}

// Tick runs one step of the pipeline: input, motion, detection, resolution,
// then notification. dt is in seconds and must not be negative.
func (s *Simulation) Tick(dt float64) {
	tick := components.Tick.Get(s.clock)
	tick.Delta = dt
	tick.Count++

	systems.UpdateInput(s.actor, s.input)
	systems.UpdateMotion(s.actor, s.gravity, dt)
	systems.UpdateCollisions(s.world, s.actor, s.space)

	// Drain the notifier so subscribers hear about this tick's contact once
	components.CollisionEvent.ProcessEvents(s.world)
}

// SetInput swaps the input source used from the next tick on.
func (s *Simulation) SetInput(source systems.InputSource) {
	s.input = source
}

// OnCollision registers fn to run once at the end of every tick that
// produced a contact.
func (s *Simulation) OnCollision(fn func()) {
	components.CollisionEvent.Subscribe(s.world, func(_ donburi.World, _ components.CollisionEventData) {
		fn()
	})
}

// Actor returns a copy of the actor's state.
func (s *Simulation) Actor() components.ActorData {
	return *components.Actor.Get(s.actor)
}

// Colliders returns copies of all colliders in registration order.
func (s *Simulation) Colliders() []components.ColliderData {
	var out []components.ColliderData
	tags.Collider.Each(s.world, func(e *donburi.Entry) {
		out = append(out, *components.Collider.Get(e))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Stats returns tick counters.
func (s *Simulation) Stats() components.TickData {
	return *components.Tick.Get(s.clock)
}

// World exposes the underlying world for hosts that add their own entities.
func (s *Simulation) World() donburi.World {
	return s.world
}
