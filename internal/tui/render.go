// Package tui renders the simulation into a terminal using tcell.
package tui

import (
	"fmt"
	"math"

	"black-hole/internal/core"
	"black-hole/internal/sims/blackhole"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// margin keeps the boundary ring off the screen edge.
const margin = 1.05

var densityGlyphs = []rune{'.', ':', '*', '#'}

const (
	wellGlyph     = '@'
	boundaryGlyph = '·'
)

// Renderer rasterizes snapshots onto a tcell screen. The top row is reserved
// for the status line.
type Renderer struct {
	grid   *core.ByteGrid
	colors []blackhole.RGB
}

// NewRenderer allocates an empty renderer; buffers grow on first Draw.
func NewRenderer() *Renderer {
	return &Renderer{grid: core.NewByteGrid(1, 1)}
}

// viewport maps world coordinates to terminal cells around the well.
type viewport struct {
	cx, cy float64
	w, h   int
	sx, sy float64
}

func newViewport(snap blackhole.Snapshot, w, h int) viewport {
	r := snap.MaxDist * margin
	if r <= 0 {
		r = 1
	}
	sx := math.Max(2*r/float64(w), cellAspect*r/float64(h))
	return viewport{
		cx: snap.Well.Position.X,
		cy: snap.Well.Position.Y,
		w:  w,
		h:  h,
		sx: sx,
		sy: sx * cellAspect,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	col := int(math.Floor((x-v.cx)/v.sx + float64(v.w)/2))
	row := int(math.Floor((y-v.cy)/v.sy + float64(v.h)/2))
	return col, row
}

// Draw paints snap onto screen. It does not call Show.
func (r *Renderer) Draw(screen tcell.Screen, snap blackhole.Snapshot) {
	w, h := screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	theme := themeFor(snap.DarkMode)
	screen.Fill(' ', theme.base)

	fieldH := h - 1
	vp := newViewport(snap, w, fieldH)

	r.grid.Resize(w, fieldH)
	if len(r.colors) != w*fieldH {
		r.colors = make([]blackhole.RGB, w*fieldH)
	}

	steps := 4 * (w + fieldH)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := vp.cell(vp.cx+math.Cos(a)*snap.MaxDist, vp.cy+math.Sin(a)*snap.MaxDist)
		if r.grid.In(col, row) {
			screen.SetContent(col, row+1, boundaryGlyph, nil, theme.boundary)
		}
	}

	for _, p := range snap.Particles {
		col, row := vp.cell(p.Position.X, p.Position.Y)
		if r.grid.Inc(col, row) {
			r.colors[r.grid.Index(col, row)] = p.Color
		}
	}
	cells := r.grid.Cells()
	for idx, n := range cells {
		if n == 0 {
			continue
		}
		col, row := idx%w, idx/w
		c := r.colors[idx]
		style := theme.base.Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
		screen.SetContent(col, row+1, densityGlyph(n), nil, style)
	}

	if col, row := vp.cell(vp.cx, vp.cy); r.grid.In(col, row) {
		screen.SetContent(col, row+1, wellGlyph, nil, theme.well)
	}

	drawText(screen, 0, 0, statusLine(snap), theme.status)
}

func densityGlyph(n uint8) rune {
	switch {
	case n >= 8:
		return densityGlyphs[3]
	case n >= 4:
		return densityGlyphs[2]
	case n >= 2:
		return densityGlyphs[1]
	default:
		return densityGlyphs[0]
	}
}

func statusLine(snap blackhole.Snapshot) string {
	mode := "kill"
	if !snap.KillBoundary {
		mode = "sticky"
	}
	line := fmt.Sprintf(" particles %d  absorbed %d  killed %d  boundary %s  gravity %.0f ",
		len(snap.Particles), snap.Stats.Absorbed, snap.Stats.Killed, mode, snap.Well.Gravity)
	if snap.Paused {
		line += "[paused] "
	}
	return line
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

type theme struct {
	base     tcell.Style
	boundary tcell.Style
	well     tcell.Style
	status   tcell.Style
}

func themeFor(dark bool) theme {
	if dark {
		base := tcell.StyleDefault.Background(tcell.NewRGBColor(27, 27, 27)).Foreground(tcell.ColorWhite)
		return theme{
			base:     base,
			boundary: base.Foreground(tcell.ColorGray),
			well:     base.Foreground(tcell.ColorWhite).Bold(true),
			status:   base.Reverse(true),
		}
	}
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(248, 248, 248)).Foreground(tcell.ColorBlack)
	return theme{
		base:     base,
		boundary: base.Foreground(tcell.ColorGray),
		well:     base.Foreground(tcell.ColorBlack).Bold(true),
		status:   base.Reverse(true),
	}
}
