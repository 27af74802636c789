// Package sweep runs many independent simulations over a parameter grid and
// ranks them by how many particles the well swallowed.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"black-hole/internal/sims/blackhole"

	"gonum.org/v1/gonum/spatial/r2"
)

// Params is one point of the grid.
type Params struct {
	Gravity      float64
	Radius       float64
	KillBoundary bool
}

func (p Params) String() string {
	mode := "kill"
	if !p.KillBoundary {
		mode = "sticky"
	}
	return fmt.Sprintf("gravity=%.0f radius=%.1f boundary=%s", p.Gravity, p.Radius, mode)
}

// DefaultMaxParticles caps a scenario's population when Options leaves it zero.
const DefaultMaxParticles = 20000

// Result summarises one scenario after the requested number of steps. A
// runaway scenario outgrew the population cap and stopped early.
type Result struct {
	Params    Params
	Stats     blackhole.Stats
	Particles int
	MeanDist  float64
	Runaway   bool

	index int
}

// Options configures a sweep. Zero Workers uses every CPU; zero
// MaxParticles uses DefaultMaxParticles.
type Options struct {
	Base         blackhole.Config
	Steps        int
	Workers      int
	MaxParticles int
}

// Grid expands the cartesian product of the option lists.
func Grid(gravities, radii []float64, modes []bool) []Params {
	sets := make([]Params, 0, len(gravities)*len(radii)*len(modes))
	for _, g := range gravities {
		for _, r := range radii {
			for _, kill := range modes {
				sets = append(sets, Params{Gravity: g, Radius: r, KillBoundary: kill})
			}
		}
	}
	return sets
}

// Run simulates every parameter set and returns the results ordered by
// absorptions, highest first, with runaway scenarios last. Ties keep grid
// order.
func Run(ctx context.Context, opts Options, sets []Params) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	limit := opts.MaxParticles
	if limit <= 0 {
		limit = DefaultMaxParticles
	}

	type job struct {
		index  int
		params Params
	}
	jobs := make(chan job)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := runScenario(opts.Base, j.params, opts.Steps, limit)
				res.index = j.index
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i, params := range sets {
			select {
			case jobs <- job{index: i, params: params}:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep interrupted after %d of %d scenarios: %w", len(all), len(sets), err)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Runaway != all[j].Runaway {
			return !all[i].Runaway
		}
		if all[i].Stats.Absorbed != all[j].Stats.Absorbed {
			return all[i].Stats.Absorbed > all[j].Stats.Absorbed
		}
		return all[i].index < all[j].index
	})
	return all, nil
}

func runScenario(base blackhole.Config, params Params, steps, limit int) Result {
	cfg := base
	cfg.Paused = false
	cfg.Well.Gravity = params.Gravity
	cfg.Well.Radius = params.Radius
	cfg.KillBoundary = params.KillBoundary

	sim := blackhole.NewWithConfig(cfg)
	runaway := false
	for step := 0; step < steps; step++ {
		sim.Step()
		if len(sim.Particles()) > limit {
			runaway = true
			break
		}
	}

	particles := sim.Particles()
	var total float64
	for _, p := range particles {
		total += r2.Norm(r2.Sub(p.Position, cfg.Well.Position))
	}
	mean := 0.0
	if len(particles) > 0 {
		mean = total / float64(len(particles))
	}
	return Result{
		Params:    params,
		Stats:     sim.Stats(),
		Particles: len(particles),
		MeanDist:  mean,
		Runaway:   runaway,
	}
}
