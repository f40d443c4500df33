// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package config holds the pipeline's tunable, non-geometric settings:
// the trimmed-conic angle unit, the default per-type color table and
// decode-cache-clear thresholds. Values are Go literals by default and
// may be overridden from a user YAML document.
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/archex/ifcgeom/schema"
)

// AngleUnit selects the unit trimmed-conic trim parameters are read
// in. The format does not record this reliably, so the core assumes
// one unit and lets callers override it.
type AngleUnit uint8

const (
	// Degrees is the default: IfcParameterValue trims on IfcCircle/
	// IfcEllipse are read as degrees.
	Degrees AngleUnit = iota
	// Radians treats the same values as radians instead.
	Radians
)

// Config is the pipeline's full set of tunables.
type Config struct {
	AngleUnit        AngleUnit             `yaml:"angle_unit"`
	DecodeCacheLimit int                   `yaml:"decode_cache_limit"`
	DefaultColors    map[string][4]float32 `yaml:"default_colors"`
	FallbackColor    [4]float32            `yaml:"fallback_color"`
}

// Default returns the built-in configuration: degrees for trimmed
// conics, no automatic cache clearing (DecodeCacheLimit == 0 leaves
// the decode cache unbounded, cleared only by hand), and a small
// default color table keyed by IFC type name.
func Default() Config {
	return Config{
		AngleUnit:        Degrees,
		DecodeCacheLimit: 0,
		DefaultColors: map[string][4]float32{
			schema.IfcWall.String():             {0.80, 0.78, 0.75, 1.0},
			schema.IfcWallStandardCase.String(): {0.80, 0.78, 0.75, 1.0},
			schema.IfcSlab.String():             {0.65, 0.65, 0.68, 1.0},
			schema.IfcSlabStandardCase.String(): {0.65, 0.65, 0.68, 1.0},
			schema.IfcBeam.String():             {0.55, 0.40, 0.30, 1.0},
			schema.IfcColumn.String():           {0.55, 0.40, 0.30, 1.0},
			schema.IfcDoor.String():             {0.45, 0.30, 0.20, 1.0},
			schema.IfcWindow.String():           {0.55, 0.75, 0.85, 0.5},
			schema.IfcRoof.String():             {0.35, 0.25, 0.20, 1.0},
			schema.IfcStair.String():            {0.60, 0.60, 0.60, 1.0},
			schema.IfcRailing.String():          {0.30, 0.30, 0.30, 1.0},
			schema.IfcCurtainWall.String():      {0.60, 0.80, 0.90, 0.4},
			schema.IfcPlate.String():            {0.60, 0.80, 0.90, 0.4},
		},
		FallbackColor: [4]float32{0.7, 0.7, 0.7, 1.0},
	}
}

// Load parses a YAML document into a copy of base, leaving any field
// the document omits at base's value.
func Load(base Config, doc []byte) (Config, error) {
	out := base
	if err := yaml.Unmarshal(doc, &out); err != nil {
		return Config{}, err
	}
	return out, nil
}

// ColorFor returns the configured color for an IFC type name, falling
// back to FallbackColor when the type has no entry.
func (c Config) ColorFor(typeName string) [4]float32 {
	if rgba, ok := c.DefaultColors[typeName]; ok {
		return rgba
	}
	return c.FallbackColor
}
