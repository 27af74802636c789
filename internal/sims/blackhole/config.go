package blackhole

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Well is the central attracting body.
type Well struct {
	Position r2.Vec  `yaml:"position"`
	Radius   float64 `yaml:"radius"`
	Gravity  float64 `yaml:"gravity"`
}

// Config holds the live-tunable simulation settings. Hosts mutate it between
// steps; the simulation assumes the values are already within range.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Well Well `yaml:"well"`

	MaxDist        float64 `yaml:"max_dist"`
	ParticleRadius float64 `yaml:"particle_radius"`
	MinSpawnDist   float64 `yaml:"min_spawn_dist"`
	MaxSpawnDist   float64 `yaml:"max_spawn_dist"`
	ReseedCount    int     `yaml:"reseed_count"`

	Paused       bool `yaml:"paused"`
	KillBoundary bool `yaml:"kill_boundary"`
	DarkMode     bool `yaml:"dark_mode"`
}

// Bounds describes the inclusive range accepted for a tunable.
type Bounds struct {
	Min, Max float64
}

// Clamp limits v to the range. NaN maps to Min.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

var (
	wellXBounds          = Bounds{Min: 0, Max: 1600}
	wellYBounds          = Bounds{Min: 0, Max: 1200}
	wellRadiusBounds     = Bounds{Min: 0, Max: 100}
	wellGravityBounds    = Bounds{Min: 0, Max: 10000}
	maxDistBounds        = Bounds{Min: 50, Max: 1000}
	spawnDistBounds      = Bounds{Min: 50, Max: 1000}
	particleRadiusBounds = Bounds{Min: 1, Max: 10}
	reseedCountBounds    = Bounds{Min: 1, Max: 500}
)

// DefaultReseedCount is the population an empty simulation is refilled with.
const DefaultReseedCount = 50

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 1024,
		Seed:   1337,
		Well: Well{
			Position: r2.Vec{X: 640, Y: 400},
			Radius:   5,
			Gravity:  500,
		},
		MaxDist:        500,
		ParticleRadius: 2,
		MinSpawnDist:   50,
		MaxSpawnDist:   100,
		ReseedCount:    DefaultReseedCount,
		Paused:         false,
		KillBoundary:   true,
		DarkMode:       true,
	}
}

// SetMinSpawnDist updates the inner spawn bound and pushes the outer bound
// past it when the two would cross.
func (c *Config) SetMinSpawnDist(v float64) {
	c.MinSpawnDist = v
	if c.MinSpawnDist > c.MaxSpawnDist {
		c.MaxSpawnDist = c.MinSpawnDist + 1
	}
}

// SetMaxSpawnDist updates the outer spawn bound and pulls the inner bound
// below it when the two would cross.
func (c *Config) SetMaxSpawnDist(v float64) {
	c.MaxSpawnDist = v
	if c.MaxSpawnDist < c.MinSpawnDist {
		c.MinSpawnDist = c.MaxSpawnDist - 1
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overwrites the fields named in cfg. Unknown keys and unparsable
// values are ignored; numeric values are clamped to their slider range.
func (c *Config) Apply(cfg map[string]string) {
	if len(cfg) == 0 {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["reseed_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ReseedCount = int(reseedCountBounds.Clamp(float64(parsed)))
		}
	}
	floatKey(cfg, "well_x", wellXBounds, &c.Well.Position.X)
	floatKey(cfg, "well_y", wellYBounds, &c.Well.Position.Y)
	floatKey(cfg, "well_radius", wellRadiusBounds, &c.Well.Radius)
	floatKey(cfg, "well_gravity", wellGravityBounds, &c.Well.Gravity)
	floatKey(cfg, "max_dist", maxDistBounds, &c.MaxDist)
	floatKey(cfg, "particle_radius", particleRadiusBounds, &c.ParticleRadius)

	var spawn float64
	if floatKey(cfg, "min_spawn_dist", spawnDistBounds, &spawn) {
		c.SetMinSpawnDist(spawn)
	}
	if floatKey(cfg, "max_spawn_dist", spawnDistBounds, &spawn) {
		c.SetMaxSpawnDist(spawn)
	}

	boolKey(cfg, "paused", &c.Paused)
	boolKey(cfg, "kill_boundary", &c.KillBoundary)
	boolKey(cfg, "dark_mode", &c.DarkMode)
}

func floatKey(cfg map[string]string, key string, b Bounds, dst *float64) bool {
	v, ok := cfg[key]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(parsed) {
		return false
	}
	*dst = b.Clamp(parsed)
	return true
}

func boolKey(cfg map[string]string, key string, dst *bool) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}
