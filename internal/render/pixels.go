package render

import (
	"image/color"

	"black-hole/internal/core"
	"black-hole/internal/sims/blackhole"
)

// HeatCell is the edge length in pixels of one heatmap bucket.
const HeatCell = 8

// heatLevels is the number of palette entries; counts above it saturate.
const heatLevels = 16

// HeatPalette ramps from transparent to a warm tint for the given theme.
func HeatPalette(dark bool) []color.RGBA {
	hot := color.RGBA{R: 255, G: 140, B: 40}
	if !dark {
		hot = color.RGBA{R: 200, G: 40, B: 20}
	}
	palette := make([]color.RGBA, heatLevels)
	for i := 1; i < heatLevels; i++ {
		a := uint8(40 + i*(200/heatLevels))
		// Premultiplied alpha.
		palette[i] = color.RGBA{
			R: uint8(uint16(hot.R) * uint16(a) / 255),
			G: uint8(uint16(hot.G) * uint16(a) / 255),
			B: uint8(uint16(hot.B) * uint16(a) / 255),
			A: a,
		}
	}
	return palette
}

// AccumulateDensity buckets particle positions into grid cells of HeatCell
// pixels. The grid is cleared first.
func AccumulateDensity(grid *core.ByteGrid, particles []blackhole.ParticleView) {
	grid.Clear()
	for _, p := range particles {
		if p.Position.X < 0 || p.Position.Y < 0 {
			continue
		}
		grid.Inc(int(p.Position.X)/HeatCell, int(p.Position.Y)/HeatCell)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
