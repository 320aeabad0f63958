// Package config holds the renderer's settings and loads them from defaults,
// a YAML file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Raycaster RaycasterConfig `mapstructure:"raycaster" yaml:"raycaster"`
	Loader    LoaderConfig    `mapstructure:"loader" yaml:"loader"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// WindowConfig describes the logical screen and how it is scaled on the desktop.
type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Scale  int    `mapstructure:"scale" yaml:"scale"`
	Title  string `mapstructure:"title" yaml:"title"`
	VSync  bool   `mapstructure:"vsync" yaml:"vsync"`
}

// RaycasterConfig holds the fixed per-session constants of the renderer.
type RaycasterConfig struct {
	FOVDegrees  float64 `mapstructure:"fov_degrees" yaml:"fov_degrees"`
	MaxDistance float64 `mapstructure:"max_distance" yaml:"max_distance"`
	// RayStep is the sampling step of the old fixed-step caster. The DDA does
	// not read it.
	RayStep       float64 `mapstructure:"ray_step" yaml:"ray_step"`
	MovementSpeed float64 `mapstructure:"movement_speed" yaml:"movement_speed"`
	RotationSpeed float64 `mapstructure:"rotation_speed" yaml:"rotation_speed"`
	ShadeMin      int     `mapstructure:"shade_min" yaml:"shade_min"`
	ShadeMax      int     `mapstructure:"shade_max" yaml:"shade_max"`
	ShowMinimap   bool    `mapstructure:"show_minimap" yaml:"show_minimap"`
	MinimapScale  int     `mapstructure:"minimap_scale" yaml:"minimap_scale"`
}

// FOV returns the field of view in radians.
func (c RaycasterConfig) FOV() float64 {
	return c.FOVDegrees / 180 * math.Pi
}

type LoaderConfig struct {
	StartupTicks int  `mapstructure:"startup_ticks" yaml:"startup_ticks"`
	ShowInfo     bool `mapstructure:"show_info" yaml:"show_info"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  240,
			Height: 240,
			Scale:  3,
			Title:  "tilecaster",
			VSync:  true,
		},
		Raycaster: RaycasterConfig{
			FOVDegrees:    45,
			MaxDistance:   30,
			RayStep:       0.01,
			MovementSpeed: 0.2,
			RotationSpeed: 0.2,
			ShadeMin:      0x11,
			ShadeMax:      0xff,
			ShowMinimap:   true,
			MinimapScale:  1,
		},
		Loader: LoaderConfig{
			StartupTicks: 30,
			ShowInfo:     false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	}

	r := c.Raycaster
	if r.FOVDegrees <= 0 || r.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v must be in (0, 180)", ErrInvalid, r.FOVDegrees)
	}
	if r.MaxDistance <= 0 {
		return fmt.Errorf("%w: max_distance %v", ErrInvalid, r.MaxDistance)
	}
	if r.MovementSpeed < 0 || r.RotationSpeed < 0 {
		return fmt.Errorf("%w: negative speed", ErrInvalid)
	}
	// Rotate wraps the angle with a single ±2π correction.
	if r.RotationSpeed > 2*math.Pi {
		return fmt.Errorf("%w: rotation_speed %v exceeds 2π", ErrInvalid, r.RotationSpeed)
	}
	// A step of a whole tile or more can pass over a wall.
	if r.MovementSpeed >= 1 {
		return fmt.Errorf("%w: movement_speed %v must be below 1", ErrInvalid, r.MovementSpeed)
	}
	if r.ShadeMin < 0 || r.ShadeMax > 255 || r.ShadeMin > r.ShadeMax {
		return fmt.Errorf("%w: shade range [%d, %d]", ErrInvalid, r.ShadeMin, r.ShadeMax)
	}
	if r.MinimapScale <= 0 {
		return fmt.Errorf("%w: minimap_scale %d", ErrInvalid, r.MinimapScale)
	}

	if c.Loader.StartupTicks < 0 {
		return fmt.Errorf("%w: startup_ticks %d", ErrInvalid, c.Loader.StartupTicks)
	}

	return nil
}
