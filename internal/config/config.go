// Package config handles tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/soccerworks/pitchmesh/internal/field"
	"github.com/soccerworks/pitchmesh/pkg/geom"
)

// Config holds all generator and viewer settings.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// FieldConfig holds the pitch generation parameters.
type FieldConfig struct {
	SizeClass      string      `yaml:"size_class"` // "adult" or "kid"
	TurfPhysics    bool        `yaml:"turf_physics"`
	CircleVertices int         `yaml:"circle_vertices"`
	Position       [3]float64  `yaml:"position"`
	Orientation    Orientation `yaml:"orientation"`
}

// Orientation is an axis-angle rotation, angle in radians.
type Orientation struct {
	Axis  [3]float64 `yaml:"axis"`
	Angle float64    `yaml:"angle"`
}

// ViewerConfig holds display settings for the preview window.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			SizeClass:      "adult",
			TurfPhysics:    true,
			CircleVertices: field.DefaultCircleVertices,
			Orientation:    Orientation{Axis: [3]float64{0, 0, 1}},
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// FieldParams validates the field section and converts it to generation
// parameters. The size class string is the only fallible input.
func (c *Config) FieldParams() (field.Params, error) {
	class, err := field.ParseSizeClass(c.Field.SizeClass)
	if err != nil {
		return field.Params{}, fmt.Errorf("field config: %w", err)
	}
	if c.Field.CircleVertices < 0 {
		return field.Params{}, fmt.Errorf("field config: circle_vertices must not be negative, got %d", c.Field.CircleVertices)
	}

	orientation := geom.Identity()
	if a := c.Field.Orientation; a.Angle != 0 {
		orientation = geom.AxisAngle{
			Axis:  geom.Vec3{X: a.Axis[0], Y: a.Axis[1], Z: a.Axis[2]},
			Angle: a.Angle,
		}
	}

	return field.Params{
		Size: class,
		Position: geom.Vec3{
			X: c.Field.Position[0],
			Y: c.Field.Position[1],
			Z: c.Field.Position[2],
		},
		Orientation:    orientation,
		TurfPhysics:    c.Field.TurfPhysics,
		CircleVertices: c.Field.CircleVertices,
	}, nil
}
