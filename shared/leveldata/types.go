// Package leveldata provides TMX level parsing for world setup.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Colliders   []Rect
	ActorSpawns []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a static collider given by its top-left corner and size, in the
// order it appears in the level file.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is the centre of an actor start position.
type SpawnPoint struct {
	X, Y float64
}
