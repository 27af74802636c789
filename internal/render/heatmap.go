//go:build ebiten

package render

import (
	"black-hole/internal/core"
	"black-hole/internal/sims/blackhole"

	"github.com/hajimehoshi/ebiten/v2"
)

// Heatmap shades regions by particle density on top of the scene.
type Heatmap struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewHeatmap sizes the heatmap for a w×h pixel viewport.
func NewHeatmap(w, h int) *Heatmap {
	gw := (w + HeatCell - 1) / HeatCell
	gh := (h + HeatCell - 1) / HeatCell
	return &Heatmap{
		grid: core.NewByteGrid(gw, gh),
		img:  ebiten.NewImage(gw, gh),
		buf:  make([]byte, gw*gh*4),
	}
}

// Draw accumulates snap's particles and blits the scaled density layer.
func (h *Heatmap) Draw(dst *ebiten.Image, snap blackhole.Snapshot) {
	AccumulateDensity(h.grid, snap.Particles)
	fillPaletteRGBA(h.buf, h.grid.Cells(), HeatPalette(snap.DarkMode))
	h.img.WritePixels(h.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(HeatCell, HeatCell)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(h.img, op)
}
