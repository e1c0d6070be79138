package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig contains physics-related configuration values.
// World space is screen space: Y grows downward.
type PhysicsConfig struct {
	// Gravity is the downward acceleration in units/s². Fixed for the process lifetime.
	Gravity float64 `yaml:"gravity"`
}

// ActorConfig contains the controllable actor's starting values
type ActorConfig struct {
	MovementSpeed float64 `yaml:"movementSpeed"` // units/s while a direction is held

	// Visual size. Collision half extents are derived as size / 2.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig describes the default platform placed when no level file is loaded
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// OffsetY is how far below the window centre the platform sits
	OffsetY float64 `yaml:"offsetY"`
}

// SpaceConfig contains broad-phase spatial hash configuration
type SpaceConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
}

// RenderConfig contains colours used by the windowed host
type RenderConfig struct {
	BackgroundColor color.RGBA
	ActorColor      color.RGBA
	PlatformColor   color.RGBA
	FlashColor      color.RGBA
	HUDTextColor    color.RGBA

	FlashDuration float32 // seconds a collision highlight takes to fade
	HUDFontSize   float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogCollisions bool `yaml:"logCollisions"` // log every resolved contact
	ShowHUD       bool `yaml:"showHUD"`
	ShowSpace     bool `yaml:"showSpace"` // outline broad-phase proxies
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Actor ActorConfig
var Platform PlatformConfig
var Space SpaceConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Fuchsia   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		Gravity: 9.821 * 50.0,
	}

	Actor = ActorConfig{
		MovementSpeed: 500.0,
		Width:         20.0,
		Height:        25.0,
	}

	Platform = PlatformConfig{
		Width:   200.0,
		Height:  20.0,
		OffsetY: 200.0,
	}

	Space = SpaceConfig{
		CellWidth:  16,
		CellHeight: 16,
	}

	Render = RenderConfig{
		BackgroundColor: Black,
		ActorColor:      Fuchsia,
		PlatformColor:   Gray,
		FlashColor:      LightBlue,
		HUDTextColor:    White,
		FlashDuration:   0.25,
		HUDFontSize:     12,
	}

	Debug = DebugConfig{}
}
