package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of an overlay file. Sections that are
// absent keep the values set in init.
type fileConfig struct {
	Window   *Config         `yaml:"window"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Actor    *ActorConfig    `yaml:"actor"`
	Platform *PlatformConfig `yaml:"platform"`
	Space    *SpaceConfig    `yaml:"space"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// LoadFile applies a YAML overlay file on top of the defaults.
// It must be called once at startup, before the simulation is built.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Load decodes a YAML overlay from r. Fields missing from a present section
// keep their current value.
func Load(r io.Reader) error {
	window := *C
	physics := Physics
	actor := Actor
	platform := Platform
	space := Space
	debug := Debug

	fc := fileConfig{
		Window:   &window,
		Physics:  &physics,
		Actor:    &actor,
		Platform: &platform,
		Space:    &space,
		Debug:    &debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	if err := validate(&window, &actor, &space); err != nil {
		return err
	}

	C = &window
	Physics = physics
	Actor = actor
	Platform = platform
	Space = space
	Debug = debug
	return nil
}

func validate(window *Config, actor *ActorConfig, space *SpaceConfig) error {
	if window.Width <= 0 || window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", window.Width, window.Height)
	}
	if actor.Width <= 0 || actor.Height <= 0 {
		return fmt.Errorf("actor size must be positive, got %gx%g", actor.Width, actor.Height)
	}
	if space.CellWidth <= 0 || space.CellHeight <= 0 {
		return fmt.Errorf("space cell size must be positive, got %dx%d", space.CellWidth, space.CellHeight)
	}
	return nil
}
