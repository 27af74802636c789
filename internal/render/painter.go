//go:build ebiten

package render

import (
	"black-hole/internal/sims/blackhole"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws the well, the outer boundary and every particle.
type Painter struct{}

// NewPainter constructs a Painter.
func NewPainter() *Painter { return &Painter{} }

// Draw renders snap onto dst using the theme selected by snap.DarkMode.
func (p *Painter) Draw(dst *ebiten.Image, snap blackhole.Snapshot) {
	theme := ThemeFor(snap.DarkMode)
	dst.Fill(theme.Background)

	wx, wy := float32(snap.Well.Position.X), float32(snap.Well.Position.Y)
	vector.DrawFilledCircle(dst, wx, wy, float32(snap.Well.Radius), theme.WellFill, true)
	vector.StrokeCircle(dst, wx, wy, float32(snap.Well.Radius), 1, theme.WellStroke, true)
	vector.StrokeCircle(dst, wx, wy, float32(snap.MaxDist), 1, theme.Boundary, true)

	r := float32(snap.ParticleRadius)
	for _, pv := range snap.Particles {
		vector.DrawFilledCircle(dst, float32(pv.Position.X), float32(pv.Position.Y), r, ParticleColor(pv.Color), true)
	}
}
