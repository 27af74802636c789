package blackhole

import (
	"log/slog"

	"black-hole/internal/core"
	pcore "black-hole/pkg/core"

	"gonum.org/v1/gonum/spatial/r2"
)

// stickyDamping is the fraction of velocity kept after hitting a sticky boundary.
const stickyDamping = 0.1

// Stats accumulates lifecycle counters since the last Reset.
type Stats struct {
	Steps    int `yaml:"steps"`
	Absorbed int `yaml:"absorbed"`
	Killed   int `yaml:"killed"`
	Clamped  int `yaml:"clamped"`
	Spawned  int `yaml:"spawned"`
	Reseeds  int `yaml:"reseeds"`
}

// Simulation owns the well configuration and the live particle population.
type Simulation struct {
	cfg       Config
	particles []Particle
	pending   []Particle
	stats     Stats

	rng    Rand
	seeded *pcore.RNG
	log    *slog.Logger
}

// New returns a simulation with the default configuration and the given
// viewport dimensions.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Simulation {
	rng := pcore.NewRNG(cfg.Seed)
	s := NewWithRand(cfg, rng)
	s.seeded = rng
	return s
}

// NewWithRand returns a simulation that spawns particles from rng. Reset
// cannot reseed a caller-provided source.
func NewWithRand(cfg Config, rng Rand) *Simulation {
	if cfg.ReseedCount <= 0 {
		cfg.ReseedCount = DefaultReseedCount
	}
	return &Simulation{
		cfg: cfg,
		rng: rng,
		log: slog.New(slog.DiscardHandler),
	}
}

// WithLogger attaches a logger for lifecycle events.
func (s *Simulation) WithLogger(l *slog.Logger) *Simulation {
	if l != nil {
		s.log = l
	}
	return s
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "blackhole" }

// Size reports the viewport dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config exposes the live configuration for hosts to tune between steps.
func (s *Simulation) Config() *Config { return &s.cfg }

// Particles exposes the live population. Callers must not retain it across Step.
func (s *Simulation) Particles() []Particle { return s.particles }

// SetParticles replaces the live population.
func (s *Simulation) SetParticles(ps []Particle) {
	s.particles = append(s.particles[:0], ps...)
}

// Stats returns the lifecycle counters.
func (s *Simulation) Stats() Stats { return s.stats }

// Reset restores the default tunables, keeps the viewport and empties the
// population. A zero seed reuses the configured one.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	w, h := s.cfg.Width, s.cfg.Height
	s.cfg = DefaultConfig()
	s.cfg.Width, s.cfg.Height = w, h
	s.cfg.Seed = effective
	if s.seeded != nil {
		s.seeded.Reseed(effective)
	}
	s.particles = s.particles[:0]
	s.pending = s.pending[:0]
	s.stats = Stats{}
	s.log.Debug("simulation reset", "seed", effective)
}

// Spawn appends n fresh particles drawn from the configured spawn annulus.
func (s *Simulation) Spawn(n int) {
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, s.newParticle())
	}
}

func (s *Simulation) newParticle() Particle {
	s.stats.Spawned++
	return NewRandomParticle(s.rng, s.cfg.Well.Position, s.cfg.MinSpawnDist, s.cfg.MaxSpawnDist)
}

// Step advances every particle by one frame.
func (s *Simulation) Step() {
	if s.cfg.Paused {
		return
	}
	if len(s.particles) == 0 {
		s.Spawn(s.cfg.ReseedCount)
		s.stats.Reseeds++
		s.log.Debug("population reseeded", "count", s.cfg.ReseedCount)
	}

	well := s.cfg.Well
	kept := s.particles[:0]
	for _, p := range s.particles {
		toWell := r2.Sub(well.Position, p.Position)
		distance := r2.Norm(toWell)

		if distance <= well.Radius {
			s.pending = append(s.pending, s.newParticle(), s.newParticle())
			s.stats.Absorbed++
			continue
		}

		direction := r2.Scale(1/distance, toWell)
		force := well.Gravity / (distance * distance)
		p.Velocity = r2.Add(p.Velocity, r2.Scale(force, direction))
		next := r2.Add(p.Position, p.Velocity)

		if r2.Norm(r2.Sub(well.Position, next)) > s.cfg.MaxDist {
			if s.cfg.KillBoundary {
				s.stats.Killed++
				continue
			}
			p.Position = r2.Sub(well.Position, r2.Scale(s.cfg.MaxDist, direction))
			p.Velocity = r2.Scale(stickyDamping, p.Velocity)
			s.stats.Clamped++
		} else {
			p.Position = next
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = append(kept, s.pending...)
	s.pending = s.pending[:0]
	s.stats.Steps++
}

func init() {
	core.Register("blackhole", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
