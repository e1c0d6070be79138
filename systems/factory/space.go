package factory

import (
	"math"

	"github.com/automoto/platformer-core/archetypes"
	"github.com/automoto/platformer-core/components"
	"github.com/automoto/platformer-core/shared/gamemath"
	"github.com/automoto/platformer-core/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// spaceMarginCells is how many empty cells surround the collider bounds so
// that an actor straddling the space edge still shares cells with them.
const spaceMarginCells = 2

// CreateSpace builds the broad-phase space sized to enclose every box in
// bounds. It must be created before any collider is registered.
func CreateSpace(w donburi.World, bounds []gamemath.AABB, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	for i, b := range bounds {
		lo, hi := b.Min(), b.Max()
		if i == 0 {
			minX, minY, maxX, maxY = lo.X, lo.Y, hi.X, hi.Y
			continue
		}
		minX = math.Min(minX, lo.X)
		minY = math.Min(minY, lo.Y)
		maxX = math.Max(maxX, hi.X)
		maxY = math.Max(maxY, hi.Y)
	}

	marginX := float64(spaceMarginCells * cellWidth)
	marginY := float64(spaceMarginCells * cellHeight)
	origin := math2.Vec2{X: minX - marginX, Y: minY - marginY}
	width := int(math.Ceil(maxX-minX+2*marginX)) + cellWidth
	height := int(math.Ceil(maxY-minY+2*marginY)) + cellHeight

	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	spaceData.Add(probe)

	components.Space.SetValue(space, components.SpaceData{
		Space:  spaceData,
		Origin: origin,
		Probe:  probe,
		Margin: math2.Vec2{X: float64(cellWidth), Y: float64(cellHeight)},
	})
	return space
}
