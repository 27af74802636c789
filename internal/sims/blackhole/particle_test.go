package blackhole

import (
	"math"
	"testing"

	pcore "black-hole/pkg/core"

	"gonum.org/v1/gonum/spatial/r2"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Range(lo, hi float64) float64 { return lo + r.f*(hi-lo) }
func (r fixedRand) IntN(int) int                  { return r.n }

func TestNewRandomParticleBounds(t *testing.T) {
	rng := pcore.NewRNG(11)
	center := r2.Vec{X: 640, Y: 400}
	for i := 0; i < 2000; i++ {
		p := NewRandomParticle(rng, center, 50, 100)

		radial := r2.Sub(p.Position, center)
		d := r2.Norm(radial)
		if d < 50-eps || d > 100+eps {
			t.Fatalf("particle %d spawned at distance %.6f", i, d)
		}
		speed := r2.Norm(p.Velocity)
		if speed < 1-eps || speed > 3+eps {
			t.Fatalf("particle %d speed %.6f outside [1,3]", i, speed)
		}
		if cos := r2.Dot(radial, p.Velocity) / (d * speed); math.Abs(cos) > 1e-9 {
			t.Fatalf("particle %d velocity is not tangential (cos=%g)", i, cos)
		}
	}
}

func TestNewRandomParticleUsesInjectedSource(t *testing.T) {
	center := r2.Vec{X: 10, Y: 20}
	p := NewRandomParticle(fixedRand{f: 0, n: 200}, center, 30, 60)

	if p.Position != (r2.Vec{X: 40, Y: 20}) {
		t.Fatalf("zero draw should place the particle at angle 0 and min distance, got %+v", p.Position)
	}
	if math.Abs(p.Velocity.X) > eps || math.Abs(p.Velocity.Y-1) > eps {
		t.Fatalf("zero draw should give unit speed along +Y, got %+v", p.Velocity)
	}
	if p.Color != (RGB{200, 200, 200}) {
		t.Fatalf("color channels should come from IntN, got %v", p.Color)
	}

	top := NewRandomParticle(fixedRand{f: 0.25, n: 255}, center, 30, 60)
	if d := r2.Norm(r2.Sub(top.Position, center)); math.Abs(d-37.5) > eps {
		t.Fatalf("quarter draw should land at 37.5, got %.6f", d)
	}
	if math.Abs(top.Position.X-center.X) > eps || top.Position.Y <= center.Y {
		t.Fatalf("quarter turn should spawn straight below the center in screen space, got %+v", top.Position)
	}
}

func TestNewRandomParticleDegenerateAnnulus(t *testing.T) {
	rng := pcore.NewRNG(5)
	center := r2.Vec{}
	for i := 0; i < 100; i++ {
		p := NewRandomParticle(rng, center, 75, 75)
		if d := r2.Norm(p.Position); math.Abs(d-75) > eps {
			t.Fatalf("collapsed annulus must spawn at exactly 75, got %.9f", d)
		}
	}
}
