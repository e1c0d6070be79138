package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from level files
const (
	CollidersLayer = "colliders"
	ActorGroup     = "actor"
)

// LoadCollisionData parses a TMX file and returns its colliders and actor
// spawns. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
//
// Colliders come from the "colliders" object group (rectangles) and from a
// tile layer of the same name (one collider per solid tile). Every object in
// the "actor" group is a spawn; how many there may be is the caller's call.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from the colliders tile layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != CollidersLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Colliders = append(data.Colliders, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case CollidersLayer:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("%s: collider object %d has non-positive size %gx%g",
						tmxPath, o.ID, o.Width, o.Height)
				}
				data.Colliders = append(data.Colliders, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case ActorGroup:
			for _, o := range og.Objects {
				data.ActorSpawns = append(data.ActorSpawns, SpawnPoint{
					X: o.X + o.Width/2,
					Y: o.Y + o.Height/2,
				})
			}
		}
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := LoadCollisionData(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
