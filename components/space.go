package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// SpaceData is the broad-phase spatial hash holding every collider.
// resolv cells start at (0,0), so world coordinates are shifted by Origin
// before they are placed in the space.
type SpaceData struct {
	*resolv.Space
	Origin math2.Vec2

	// Probe follows the actor, inflated by Margin on every side, to gather
	// candidates.
	Probe  *resolv.Object
	Margin math2.Vec2
}

// ToSpace converts a world-space top-left corner to space coordinates.
func (s *SpaceData) ToSpace(x, y float64) (float64, float64) {
	return x - s.Origin.X, y - s.Origin.Y
}

var Space = donburi.NewComponentType[SpaceData]()
