// Package render draws simulation snapshots with ebiten.
package render

import (
	"image/color"

	"black-hole/internal/sims/blackhole"
)

// Theme holds the colors used for one visual mode. Colors are premultiplied.
type Theme struct {
	Background color.RGBA
	WellFill   color.RGBA
	WellStroke color.RGBA
	Boundary   color.RGBA
	Panel      color.RGBA
	Text       color.RGBA
	TextMuted  color.RGBA
	Button     color.RGBA
	ButtonOff  color.RGBA
}

var (
	darkTheme = Theme{
		Background: color.RGBA{R: 27, G: 27, B: 27, A: 255},
		WellFill:   color.RGBA{A: 255},
		WellStroke: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Boundary:   color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Panel:      color.RGBA{R: 14, G: 14, B: 18, A: 230},
		Text:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		TextMuted:  color.RGBA{R: 160, G: 160, B: 170, A: 255},
		Button:     color.RGBA{R: 54, G: 56, B: 64, A: 255},
		ButtonOff:  color.RGBA{R: 32, G: 34, B: 40, A: 255},
	}
	lightTheme = Theme{
		Background: color.RGBA{R: 248, G: 248, B: 248, A: 255},
		WellFill:   color.RGBA{A: 255},
		WellStroke: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Boundary:   color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Panel:      color.RGBA{R: 212, G: 212, B: 216, A: 230},
		Text:       color.RGBA{R: 30, G: 30, B: 36, A: 255},
		TextMuted:  color.RGBA{R: 110, G: 110, B: 120, A: 255},
		Button:     color.RGBA{R: 200, G: 202, B: 210, A: 255},
		ButtonOff:  color.RGBA{R: 224, G: 224, B: 228, A: 255},
	}
)

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

// ParticleColor converts a particle color to an opaque RGBA value.
func ParticleColor(c blackhole.RGB) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
