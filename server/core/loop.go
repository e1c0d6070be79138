package core

import (
	"log"
	"sync"
	"time"
)

// GameLoop drives a Server at a fixed rate on its own goroutine.
type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the server reports it is done.
func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	dt := 1 / float64(g.tickRate)
	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[server] game loop stopped")
			return
		case <-ticker.C:
			if !g.server.Step(dt) {
				g.running = false
				log.Println("[server] game loop finished")
				return
			}
		}
	}
}

// Stop is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
