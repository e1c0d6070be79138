package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/platformer-core/components"
	cfg "github.com/automoto/platformer-core/config"
	"github.com/automoto/platformer-core/fonts"
	"github.com/automoto/platformer-core/shared/leveldata"
	"github.com/automoto/platformer-core/simulation"
	"github.com/automoto/platformer-core/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PlatformerScene runs one simulation inside the ebiten window.
type PlatformerScene struct {
	sim       *simulation.Simulation
	level     *leveldata.CollisionData
	levelName string
	once      sync.Once
	err       error

	flash      *gween.Tween
	flashLevel float32
}

// NewPlatformerScene creates a scene for level, or for the default
// single-platform layout when level is nil.
func NewPlatformerScene(level *leveldata.CollisionData, levelName string) *PlatformerScene {
	if levelName == "" {
		levelName = "default"
	}
	return &PlatformerScene{level: level, levelName: levelName}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	ps.sim.Tick(1 / float64(ebiten.TPS()))

	if ps.flash != nil {
		var done bool
		ps.flashLevel, done = ps.flash.Update(float32(1 / float64(ebiten.TPS())))
		if done {
			ps.flash = nil
			ps.flashLevel = 0
		}
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.BackgroundColor)

	if ps.sim == nil {
		return
	}

	for _, c := range ps.sim.Colliders() {
		drawBox(screen, c.Position.X-c.HalfExtent.X, c.Position.Y-c.HalfExtent.Y,
			c.HalfExtent.X*2, c.HalfExtent.Y*2, cfg.Render.PlatformColor)
	}

	actor := ps.sim.Actor()
	drawBox(screen, actor.Position.X-actor.HalfExtent.X, actor.Position.Y-actor.HalfExtent.Y,
		actor.HalfExtent.X*2, actor.HalfExtent.Y*2,
		lerpColor(cfg.Render.ActorColor, cfg.Render.FlashColor, ps.flashLevel))

	if cfg.Debug.ShowSpace {
		ps.drawSpace(screen)
	}
	if cfg.Debug.ShowHUD {
		ps.drawHUD(screen, actor)
	}
}

func (ps *PlatformerScene) configure() {
	if err := fonts.LoadDefaults(cfg.Render.HUDFontSize); err != nil {
		ps.err = err
		return
	}

	keyboard, err := NewKeyboard(cfg.Input.Bindings)
	if err != nil {
		ps.err = fmt.Errorf("keyboard: %w", err)
		return
	}

	opts := simulation.DefaultOptions()
	opts.Level = ps.level
	opts.Input = keyboard

	ps.sim, err = simulation.New(opts)
	if err != nil {
		ps.err = fmt.Errorf("level %s: %w", ps.levelName, err)
		return
	}

	// Restart the highlight on every contact tick; resting keeps it lit
	ps.sim.OnCollision(func() {
		ps.flash = gween.New(1, 0, cfg.Render.FlashDuration, ease.OutQuad)
		ps.flashLevel = 1
	})

	log.Printf("[scene] running level %s", ps.levelName)
}

func (ps *PlatformerScene) drawHUD(screen *ebiten.Image, actor components.ActorData) {
	stats := ps.sim.Stats()

	lines := []string{
		fmt.Sprintf("level %s  tick %d  contacts %d", ps.levelName, stats.Count, stats.Collisions),
		fmt.Sprintf("pos (%.1f, %.1f)  vel (%.1f, %.1f)",
			actor.Position.X, actor.Position.Y, actor.Velocity.X, actor.Velocity.Y),
		fmt.Sprintf("resting %t", actor.IsResting),
	}

	face := fonts.Small.Get()
	lineHeight := cfg.Render.HUDFontSize * 1.4
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(cfg.Render.HUDTextColor)
		text.Draw(screen, line, face, op)
	}
}

// drawSpace outlines every object in the broad phase, probe included.
func (ps *PlatformerScene) drawSpace(screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ps.sim.World())
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvProbe) {
			c = color.RGBA{255, 0, 255, 255}
		}

		x, y := obj.X+space.Origin.X, obj.Y+space.Origin.Y
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}

func drawBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func lerpColor(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), mix(from.A, to.A)}
}
