package components

import "github.com/yohamta/donburi"

// TickData tracks the host clock as seen by the simulation.
type TickData struct {
	Delta      float64 // seconds since the previous tick
	Count      uint64
	Collisions uint64 // ticks that produced a contact
}

var Tick = donburi.NewComponentType[TickData]()
