package simulation

import (
	"testing"

	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/automoto/platformer-core/shared/leveldata"
	"github.com/automoto/platformer-core/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func testOptions() Options {
	return Options{
		Window:   cfg.Config{Width: 1280, Height: 720},
		Physics:  cfg.PhysicsConfig{Gravity: 10},
		Actor:    cfg.ActorConfig{MovementSpeed: 100, Width: 2, Height: 2},
		Platform: cfg.PlatformConfig{Width: 200, Height: 20, OffsetY: 200},
		Space:    cfg.SpaceConfig{CellWidth: 16, CellHeight: 16},
	}
}

// ledgeLayout puts the actor exactly on top of a 10x2 ledge: the actor's
// bottom edge and the ledge's top edge are both at y=1.
func ledgeLayout() Layout {
	return Layout{
		ActorStart: math2.Vec2{X: 0, Y: 0},
		Colliders: []gamemath.AABB{
			gamemath.NewAABB(math2.Vec2{X: 0, Y: 2}, math2.Vec2{X: 5, Y: 1}),
		},
	}
}

type heldKeys map[cfg.ActionID]bool

func (h heldKeys) IsActionPressed(action cfg.ActionID) bool {
	return h[action]
}

func TestRestingSuppressesGravityOnNextTick(t *testing.T) {
	sim, err := NewWithLayout(testOptions(), ledgeLayout())
	require.NoError(t, err)

	sim.Tick(0.1)
	actor := sim.Actor()
	assert.InDelta(t, 0.1, actor.Position.Y, 1e-9, "first tick falls into the ledge")
	assert.Equal(t, 0.0, actor.Velocity.Y, "falling into a top face zeroes vertical velocity")
	assert.True(t, actor.IsResting)

	sim.Tick(0.1)
	actor = sim.Actor()
	assert.InDelta(t, 0.1, actor.Position.Y, 1e-9, "gravity skipped while resting")
	assert.Equal(t, 0.0, actor.Velocity.Y)
	assert.True(t, actor.IsResting)
}

func TestLeavingContactRestoresGravity(t *testing.T) {
	keys := heldKeys{}
	opts := testOptions()
	opts.Input = keys

	sim, err := NewWithLayout(opts, ledgeLayout())
	require.NoError(t, err)

	sim.Tick(0.1) // lands
	require.True(t, sim.Actor().IsResting)

	// Walk off the ledge in one tick: 100 units/s for 0.1s
	keys[cfg.ActionMoveRight] = true
	sim.Tick(0.1)
	actor := sim.Actor()
	assert.InDelta(t, 10.0, actor.Position.X, 1e-9)
	assert.InDelta(t, 0.1, actor.Position.Y, 1e-9, "still resting from the previous tick")
	assert.False(t, actor.IsResting, "no contact after walking off")

	keys[cfg.ActionMoveRight] = false
	sim.Tick(0.1)
	actor = sim.Actor()
	assert.InDelta(t, 1.0, actor.Velocity.Y, 1e-9, "gravity is back")
	assert.InDelta(t, 0.2, actor.Position.Y, 1e-9)
}

func TestNoPositionalCorrection(t *testing.T) {
	layout := ledgeLayout()
	layout.ActorStart = math2.Vec2{X: 0, Y: 0.5} // already sunk half a unit into the ledge

	sim, err := NewWithLayout(testOptions(), layout)
	require.NoError(t, err)

	sim.Tick(0.1)
	actor := sim.Actor()
	assert.InDelta(t, 0.6, actor.Position.Y, 1e-9, "position is exactly what the integrator produced")
	assert.Equal(t, 0.0, actor.Position.X)
	assert.True(t, actor.IsResting)
}

func TestCollisionNotifiedOncePerContactTick(t *testing.T) {
	keys := heldKeys{}
	opts := testOptions()
	opts.Input = keys

	sim, err := NewWithLayout(opts, ledgeLayout())
	require.NoError(t, err)

	notified := 0
	sim.OnCollision(func() { notified++ })

	sim.Tick(0.1)
	assert.Equal(t, 1, notified)

	sim.Tick(0.1)
	assert.Equal(t, 2, notified, "resting contact is reported every tick")

	keys[cfg.ActionMoveRight] = true
	sim.Tick(0.1)
	assert.Equal(t, 2, notified, "no contact, no notification")

	stats := sim.Stats()
	assert.Equal(t, uint64(3), stats.Count)
	assert.Equal(t, uint64(2), stats.Collisions)
	assert.Equal(t, 0.1, stats.Delta)
}

func TestFallsForeverWithoutColliders(t *testing.T) {
	sim, err := NewWithLayout(testOptions(), Layout{})
	require.NoError(t, err)

	prevY, prevVY := 0.0, 0.0
	for i := 0; i < 100; i++ {
		sim.Tick(0.05)
		actor := sim.Actor()
		require.Greater(t, actor.Position.Y, prevY)
		require.Greater(t, actor.Velocity.Y, prevVY)
		require.False(t, actor.IsResting)
		prevY, prevVY = actor.Position.Y, actor.Velocity.Y
	}
	assert.InDelta(t, 50.0, prevVY, 1e-6, "velocity grows linearly: g * t")
}

func TestDefaultLayoutLandsOnPlatform(t *testing.T) {
	opts := testOptions()
	opts.Physics.Gravity = 491.05
	opts.Actor = cfg.ActorConfig{MovementSpeed: 500, Width: 20, Height: 25}

	sim, err := New(opts)
	require.NoError(t, err)

	colliders := sim.Colliders()
	require.Len(t, colliders, 1)
	assert.Equal(t, math2.Vec2{X: 640, Y: 560}, colliders[0].Position)
	assert.Equal(t, math2.Vec2{X: 100, Y: 10}, colliders[0].HalfExtent)

	for i := 0; i < 240; i++ {
		sim.Tick(1.0 / 60)
	}

	actor := sim.Actor()
	assert.True(t, actor.IsResting)
	assert.Equal(t, 0.0, actor.Velocity.Y)
	assert.Equal(t, 640.0, actor.Position.X)
	bottom := actor.Position.Y + actor.HalfExtent.Y
	assert.GreaterOrEqual(t, bottom, 550.0, "actor reached the platform top")
	assert.Less(t, bottom, 570.0, "and did not tunnel through it")
}

func TestLevelLayout(t *testing.T) {
	level := &leveldata.CollisionData{
		Colliders:   []leveldata.Rect{{X: 0, Y: 100, W: 200, H: 20}},
		ActorSpawns: []leveldata.SpawnPoint{{X: 50, Y: 10}},
	}

	layout, err := LevelLayout(level)
	require.NoError(t, err)
	assert.Equal(t, math2.Vec2{X: 50, Y: 10}, layout.ActorStart)
	require.Len(t, layout.Colliders, 1)
	assert.Equal(t, math2.Vec2{X: 100, Y: 110}, layout.Colliders[0].Center)
	assert.Equal(t, math2.Vec2{X: 100, Y: 10}, layout.Colliders[0].HalfExtent)
}

func TestLevelLayoutActorCount(t *testing.T) {
	opts := testOptions()

	opts.Level = &leveldata.CollisionData{}
	_, err := New(opts)
	assert.ErrorIs(t, err, ErrNoActor)

	opts.Level = &leveldata.CollisionData{
		ActorSpawns: []leveldata.SpawnPoint{{X: 1, Y: 1}, {X: 2, Y: 2}},
	}
	_, err = New(opts)
	assert.ErrorIs(t, err, ErrMultipleActors)
}

func TestNewRejectsDegenerateActor(t *testing.T) {
	opts := testOptions()
	opts.Actor.Width = 0

	_, err := New(opts)
	require.Error(t, err)
}

func TestSetInput(t *testing.T) {
	sim, err := NewWithLayout(testOptions(), Layout{})
	require.NoError(t, err)

	sim.SetInput(systems.InputFunc(func(action cfg.ActionID) bool {
		return action == cfg.ActionMoveLeft
	}))
	sim.Tick(0.5)
	assert.InDelta(t, -50.0, sim.Actor().Position.X, 1e-9)
}
