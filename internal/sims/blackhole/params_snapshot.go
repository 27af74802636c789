package blackhole

import (
	"math"
	"strconv"

	"black-hole/internal/core"
)

// Parameters reports the current tunables grouped for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	c := s.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Black Hole",
			Params: []core.Parameter{
				floatParam("well_x", "Black Hole X Pos", c.Well.Position.X),
				floatParam("well_y", "Black Hole Y Pos", c.Well.Position.Y),
				floatParam("well_radius", "Black Hole Radius", c.Well.Radius),
				floatParam("well_gravity", "Black Hole Gravity", c.Well.Gravity),
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				floatParam("max_dist", "Max Distance", c.MaxDist),
				floatParam("min_spawn_dist", "Min Spawn Distance", c.MinSpawnDist),
				floatParam("max_spawn_dist", "Max Spawn Distance", c.MaxSpawnDist),
				floatParam("particle_radius", "Particle Radius", c.ParticleRadius),
				intParam("reseed_count", "Reseed Count", c.ReseedCount),
				intParam("particles", "Live particles", len(s.particles)),
			},
		},
		{
			Name: "Modes",
			Params: []core.Parameter{
				boolParam("paused", "Paused", c.Paused),
				boolParam("kill_boundary", "Kill Boundary", c.KillBoundary),
				boolParam("dark_mode", "Dark Mode", c.DarkMode),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

type floatControl struct {
	key, label string
	step       float64
	bounds     Bounds
}

var floatControls = []floatControl{
	{"well_x", "Black Hole X", 10, wellXBounds},
	{"well_y", "Black Hole Y", 10, wellYBounds},
	{"well_radius", "Black Hole Radius", 1, wellRadiusBounds},
	{"well_gravity", "Black Hole Gravity", 100, wellGravityBounds},
	{"max_dist", "Max Distance", 10, maxDistBounds},
	{"min_spawn_dist", "Min Spawn Distance", 10, spawnDistBounds},
	{"max_spawn_dist", "Max Spawn Distance", 10, spawnDistBounds},
	{"particle_radius", "Particle Radius", 0.5, particleRadiusBounds},
}

// ParameterControls lists the HUD-adjustable controls with slider ranges.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, 0, len(floatControls)+4)
	for _, fc := range floatControls {
		out = append(out, core.ParameterControl{
			Key:    fc.key,
			Label:  fc.label,
			Type:   core.ParamTypeFloat,
			Step:   fc.step,
			Min:    fc.bounds.Min,
			Max:    fc.bounds.Max,
			HasMin: true,
			HasMax: true,
		})
	}
	out = append(out, core.ParameterControl{
		Key:    "reseed_count",
		Label:  "Reseed Count",
		Type:   core.ParamTypeInt,
		Step:   10,
		Min:    reseedCountBounds.Min,
		Max:    reseedCountBounds.Max,
		HasMin: true,
		HasMax: true,
	})
	for _, key := range []string{"paused", "kill_boundary", "dark_mode"} {
		out = append(out, core.ParameterControl{Key: key, Label: boolLabel(key), Type: core.ParamTypeBool})
	}
	return out
}

// SetFloatParameter updates a float tunable, clamped to its slider range.
// The spawn bounds keep min <= max by moving the opposite bound. NaN is
// rejected and leaves the value unchanged.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	c := &s.cfg
	switch key {
	case "well_x":
		c.Well.Position.X = wellXBounds.Clamp(value)
	case "well_y":
		c.Well.Position.Y = wellYBounds.Clamp(value)
	case "well_radius":
		c.Well.Radius = wellRadiusBounds.Clamp(value)
	case "well_gravity":
		c.Well.Gravity = wellGravityBounds.Clamp(value)
	case "max_dist":
		c.MaxDist = maxDistBounds.Clamp(value)
	case "min_spawn_dist":
		c.SetMinSpawnDist(spawnDistBounds.Clamp(value))
	case "max_spawn_dist":
		c.SetMaxSpawnDist(spawnDistBounds.Clamp(value))
	case "particle_radius":
		c.ParticleRadius = particleRadiusBounds.Clamp(value)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable, clamped to its range.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "reseed_count":
		s.cfg.ReseedCount = int(reseedCountBounds.Clamp(float64(value)))
	default:
		return false
	}
	return true
}

// SetBoolParameter updates one of the mode flags.
func (s *Simulation) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "paused":
		s.cfg.Paused = value
	case "kill_boundary":
		s.cfg.KillBoundary = value
	case "dark_mode":
		s.cfg.DarkMode = value
	default:
		return false
	}
	return true
}

// Toggle flips a mode flag and reports whether key was recognised.
func (s *Simulation) Toggle(key string) bool {
	var cur bool
	switch key {
	case "paused":
		cur = s.cfg.Paused
	case "kill_boundary":
		cur = s.cfg.KillBoundary
	case "dark_mode":
		cur = s.cfg.DarkMode
	default:
		return false
	}
	return s.SetBoolParameter(key, !cur)
}

func boolLabel(key string) string {
	switch key {
	case "paused":
		return "Paused"
	case "kill_boundary":
		return "Kill Boundary"
	case "dark_mode":
		return "Dark Mode"
	}
	return key
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
