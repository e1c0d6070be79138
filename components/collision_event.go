package components

import "github.com/yohamta/donburi/features/events"

// CollisionEventData carries no payload: subscribers only learn that a
// contact happened during the tick.
type CollisionEventData struct{}

// CollisionEvent is published at most once per tick and drained at the end of it.
var CollisionEvent = events.NewEventType[CollisionEventData]()
