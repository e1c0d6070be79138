package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/levels"
	"github.com/automoto/platformer-core/scenes"
	"github.com/automoto/platformer-core/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *leveldata.CollisionData, levelName string) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(level, levelName),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel resolves name against the bundled levels first, then the
// filesystem. An empty name selects the default layout.
func loadLevel(name string) (*leveldata.CollisionData, string, error) {
	if name == "" {
		return nil, "", nil
	}

	bundled := strings.TrimSuffix(name, ".tmx") + ".tmx"
	if data, err := leveldata.LoadCollisionData(levels.FS, bundled); err == nil {
		return data, strings.TrimSuffix(bundled, ".tmx"), nil
	}

	dir, file := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadCollisionData(os.DirFS(dir), file)
	if err != nil {
		return nil, "", err
	}
	return data, strings.TrimSuffix(file, ".tmx"), nil
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelName := flag.String("level", "", "Bundled level name or path to a .tmx file (empty = default platform)")
	debug := flag.Bool("debug", false, "Show the HUD, outline the broad phase and log every contact")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.ShowHUD = true
		config.Debug.ShowSpace = true
		config.Debug.LogCollisions = true
	}

	level, name, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level %q: %v", *levelName, err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("platformer-core")

	if err := ebiten.RunGame(NewGame(level, name)); err != nil {
		log.Fatal(err)
	}
}
