package tags

import "github.com/yohamta/donburi"

var (
	Actor    = donburi.NewTag().SetName("Actor")
	Collider = donburi.NewTag().SetName("Collider")
)

// Resolv tags for broad-phase queries
const (
	ResolvCollider = "collider"
	ResolvProbe    = "probe"
)
