package blackhole

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// RGB is an opaque 8-bit color triple.
type RGB [3]uint8

// Particle is a single body falling towards the well.
type Particle struct {
	Position r2.Vec `yaml:"position"`
	Velocity r2.Vec `yaml:"velocity"`
	Color    RGB    `yaml:"color,flow"`
}

// Rand is the random source consumed when spawning particles. *pkg/core.RNG
// satisfies it.
type Rand interface {
	Range(lo, hi float64) float64
	IntN(n int) int
}

const (
	minSpawnSpeed = 1.0
	maxSpawnSpeed = 3.0
)

// NewRandomParticle places a particle on the annulus [minDist, maxDist]
// around center with a tangential velocity and a random color. minDist must
// not exceed maxDist.
func NewRandomParticle(rng Rand, center r2.Vec, minDist, maxDist float64) Particle {
	angle := rng.Range(0, 2*math.Pi)
	distance := rng.Range(minDist, maxDist)
	sin, cos := math.Sincos(angle)

	position := r2.Add(center, r2.Scale(distance, r2.Vec{X: cos, Y: sin}))
	speed := rng.Range(minSpawnSpeed, maxSpawnSpeed)
	velocity := r2.Scale(speed, r2.Vec{X: -sin, Y: cos})

	return Particle{
		Position: position,
		Velocity: velocity,
		Color: RGB{
			uint8(rng.IntN(256)),
			uint8(rng.IntN(256)),
			uint8(rng.IntN(256)),
		},
	}
}
