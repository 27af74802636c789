package blackhole

import "gonum.org/v1/gonum/spatial/r2"

// ParticleView is the drawable part of a particle.
type ParticleView struct {
	Position r2.Vec
	Color    RGB
}

// Snapshot is a read-only copy of everything a host needs to draw one frame.
type Snapshot struct {
	Well           Well
	MaxDist        float64
	ParticleRadius float64
	DarkMode       bool
	Paused         bool
	KillBoundary   bool
	Particles      []ParticleView
	Stats          Stats
}

// Snapshot copies the current drawable state. The result stays valid after
// further steps.
func (s *Simulation) Snapshot() Snapshot {
	return s.SnapshotInto(nil)
}

// SnapshotInto behaves like Snapshot but reuses buf for the particle list.
func (s *Simulation) SnapshotInto(buf []ParticleView) Snapshot {
	views := buf[:0]
	for _, p := range s.particles {
		views = append(views, ParticleView{Position: p.Position, Color: p.Color})
	}
	return Snapshot{
		Well:           s.cfg.Well,
		MaxDist:        s.cfg.MaxDist,
		ParticleRadius: s.cfg.ParticleRadius,
		DarkMode:       s.cfg.DarkMode,
		Paused:         s.cfg.Paused,
		KillBoundary:   s.cfg.KillBoundary,
		Particles:      views,
		Stats:          s.stats,
	}
}

// State is the persisted form of a simulation: configuration and population.
type State struct {
	Config    Config     `yaml:"config"`
	Particles []Particle `yaml:"particles"`
}

// State captures the configuration and a copy of the population.
func (s *Simulation) State() State {
	return State{
		Config:    s.cfg,
		Particles: append([]Particle(nil), s.particles...),
	}
}

// Restore replaces configuration and population with st. The spawn range is
// re-clamped and a non-positive reseed count falls back to the default.
// Counters start from zero and the random source is reseeded from the
// restored seed.
func (s *Simulation) Restore(st State) {
	cfg := st.Config
	if cfg.ReseedCount <= 0 {
		cfg.ReseedCount = DefaultReseedCount
	}
	cfg.SetMinSpawnDist(cfg.MinSpawnDist)
	s.cfg = cfg
	if s.seeded != nil {
		s.seeded.Reseed(cfg.Seed)
	}
	s.SetParticles(st.Particles)
	s.pending = s.pending[:0]
	s.stats = Stats{}
}
