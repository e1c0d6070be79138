package core

import (
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/automoto/platformer-core/shared/leveldata"
)

// LevelSet holds every level found in one directory, keyed by stem name.
type LevelSet struct {
	Levels map[string]*leveldata.CollisionData
	Names  []string
}

// LoadLevelSet loads all .tmx levels under dir in fsys.
func LoadLevelSet(fsys fs.FS, dir string) (*LevelSet, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}

	for _, name := range names {
		data := levels[name]
		log.Printf("[server] loaded level %s: %d colliders, %d actor spawns, %dx%d map",
			name, len(data.Colliders), len(data.ActorSpawns), data.MapWidth, data.MapHeight)
	}

	return &LevelSet{Levels: levels, Names: names}, nil
}

// Get returns the named level. The .tmx suffix is optional.
func (ls *LevelSet) Get(name string) (*leveldata.CollisionData, error) {
	data, ok := ls.Levels[strings.TrimSuffix(name, ".tmx")]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %s)", name, strings.Join(ls.Names, ", "))
	}
	return data, nil
}
