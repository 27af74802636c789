//go:build ebiten

package ui

import (
	"fmt"

	"black-hole/internal/render"
	"black-hole/internal/sims/blackhole"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"space  pause / resume",
	"n      single step",
	"k      kill / sticky boundary",
	"d      dark / light mode",
	"r      reset",
	"tab    settings panel",
	"g      density heatmap",
	"ctrl+s save   ctrl+o load",
	"q/esc  quit",
}

// Overlay prints running counters and an optional key reference in the
// bottom-left corner.
type Overlay struct {
	showStats bool
	showHelp  bool
	message   string
	ttl       int
}

// NewOverlay constructs an overlay with the counters visible.
func NewOverlay() *Overlay {
	return &Overlay{showStats: true}
}

// Notify shows msg for the given number of frames.
func (o *Overlay) Notify(msg string, frames int) {
	o.message = msg
	o.ttl = frames
}

// Update handles the overlay's own toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showStats = !o.showStats
	}
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			o.message = ""
		}
	}
}

// Draw renders the overlay for snap.
func (o *Overlay) Draw(screen *ebiten.Image, snap blackhole.Snapshot) {
	theme := render.ThemeFor(snap.DarkMode)
	face := basicfont.Face7x13
	h := screen.Bounds().Dy()
	y := h - 10

	lines := o.lines(snap)
	for i := len(lines) - 1; i >= 0; i-- {
		text.Draw(screen, lines[i], face, 10, y, theme.Text)
		y -= 16
	}

	if o.message != "" {
		w := screen.Bounds().Dx()
		// DebugPrint glyphs are 6px wide.
		ebitenutil.DebugPrintAt(screen, o.message, w-10-6*len(o.message), 10)
	}
}

func (o *Overlay) lines(snap blackhole.Snapshot) []string {
	var lines []string
	if o.showHelp {
		lines = append(lines, helpLines...)
	}
	if o.showStats {
		mode := "kill"
		if !snap.KillBoundary {
			mode = "sticky"
		}
		state := "running"
		if snap.Paused {
			state = "paused"
		}
		lines = append(lines,
			fmt.Sprintf("particles %d  step %d  %s", len(snap.Particles), snap.Stats.Steps, state),
			fmt.Sprintf("absorbed %d  killed %d  clamped %d  boundary %s",
				snap.Stats.Absorbed, snap.Stats.Killed, snap.Stats.Clamped, mode),
		)
	}
	return lines
}
