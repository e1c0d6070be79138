package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/shared/leveldata"
	"github.com/automoto/platformer-core/simulation"
)

// Server runs one simulation without a window. Input comes from a held
// direction that other goroutines may change while the loop runs.
type Server struct {
	sim      *simulation.Simulation
	loop     *GameLoop
	maxTicks uint64

	mu        sync.RWMutex
	direction int
}

// Options configures a headless server.
type Options struct {
	TickRate int
	// MaxTicks stops the loop after that many ticks; 0 runs until Stop.
	MaxTicks uint64
	// Level replaces the default layout when set.
	Level *leveldata.CollisionData
	// Direction is the initial held direction: -1 left, 1 right, 0 none.
	Direction int
}

// NewServer builds the simulation from the global configuration.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, errors.New("tick rate must be positive")
	}

	s := &Server{maxTicks: opts.MaxTicks}
	if err := s.SetDirection(opts.Direction); err != nil {
		return nil, err
	}

	simOpts := simulation.DefaultOptions()
	simOpts.Level = opts.Level
	simOpts.Input = s

	sim, err := simulation.New(simOpts)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s.sim = sim
	s.loop = NewGameLoop(s, opts.TickRate)

	return s, nil
}

// Start runs the loop and blocks until it ends.
func (s *Server) Start() {
	s.loop.Run()

	stats := s.sim.Stats()
	actor := s.sim.Actor()
	log.Printf("[server] %d ticks, %d with contact, actor at (%.2f, %.2f) resting=%t",
		stats.Count, stats.Collisions, actor.Position.X, actor.Position.Y, actor.IsResting)
}

// Stop asks the loop to end; Start returns once it has.
func (s *Server) Stop() {
	s.loop.Stop()
}

// Step advances the simulation by dt and reports whether the loop should
// keep going.
func (s *Server) Step(dt float64) bool {
	s.sim.Tick(dt)
	return s.maxTicks == 0 || s.sim.Stats().Count < s.maxTicks
}

// SetDirection changes the held direction: -1 left, 1 right, 0 none.
func (s *Server) SetDirection(direction int) error {
	if direction < -1 || direction > 1 {
		return fmt.Errorf("direction %d out of range [-1, 1]", direction)
	}
	s.mu.Lock()
	s.direction = direction
	s.mu.Unlock()
	return nil
}

func (s *Server) IsActionPressed(action cfg.ActionID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch action {
	case cfg.ActionMoveLeft:
		return s.direction < 0
	case cfg.ActionMoveRight:
		return s.direction > 0
	default:
		return false
	}
}

// Actor returns a snapshot of the actor. Only call it once the loop has
// stopped, or from the loop goroutine.
func (s *Server) Actor() components.ActorData {
	return s.sim.Actor()
}

// Stats returns the simulation's tick counters. Same rules as Actor.
func (s *Server) Stats() components.TickData {
	return s.sim.Stats()
}
