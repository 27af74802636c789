package tui

import (
	"strings"
	"testing"

	"black-hole/internal/sims/blackhole"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRendererDrawsWellParticlesAndStatus(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := blackhole.Snapshot{
		Well:         blackhole.Well{Position: r2.Vec{X: 640, Y: 400}, Radius: 5, Gravity: 500},
		MaxDist:      500,
		DarkMode:     true,
		KillBoundary: true,
		Particles: []blackhole.ParticleView{
			{Position: r2.Vec{X: 840, Y: 400}, Color: blackhole.RGB{255, 0, 0}},
			{Position: r2.Vec{X: 840, Y: 400}, Color: blackhole.RGB{0, 255, 0}},
		},
		Stats: blackhole.Stats{Absorbed: 3},
	}

	NewRenderer().Draw(screen, snap)

	status := rowText(screen, 0)
	if !strings.Contains(status, "particles 2") || !strings.Contains(status, "absorbed 3") || !strings.Contains(status, "boundary kill") {
		t.Fatalf("unexpected status line %q", status)
	}

	vp := newViewport(snap, 80, 24)
	col, row := vp.cell(640, 400)
	if r, _, _, _ := screen.GetContent(col, row+1); r != wellGlyph {
		t.Fatalf("expected well glyph at (%d,%d), got %q", col, row+1, r)
	}

	col, row = vp.cell(840, 400)
	r, _, style, _ := screen.GetContent(col, row+1)
	if r != densityGlyphs[1] {
		t.Fatalf("two stacked particles should render as %q, got %q", densityGlyphs[1], r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Fatalf("cell should take the last particle's color, got %v", fg)
	}

	ring := 0
	for y := 1; y < 25; y++ {
		ring += strings.Count(rowText(screen, y), string(boundaryGlyph))
	}
	if ring == 0 {
		t.Fatal("boundary ring was not drawn")
	}
}

func TestRendererIgnoresOffscreenParticles(t *testing.T) {
	screen := newScreen(t, 40, 12)
	snap := blackhole.Snapshot{
		Well:    blackhole.Well{Position: r2.Vec{X: 0, Y: 0}},
		MaxDist: 100,
		Particles: []blackhole.ParticleView{
			{Position: r2.Vec{X: 1e6, Y: -1e6}},
		},
	}
	NewRenderer().Draw(screen, snap)
	if !strings.Contains(rowText(screen, 0), "particles 1") {
		t.Fatal("status should still count off-screen particles")
	}
}

func TestDensityGlyph(t *testing.T) {
	cases := map[uint8]rune{1: '.', 2: ':', 3: ':', 4: '*', 7: '*', 8: '#', 255: '#'}
	for n, want := range cases {
		if got := densityGlyph(n); got != want {
			t.Fatalf("densityGlyph(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestHostKeysAndFrame(t *testing.T) {
	screen := newScreen(t, 60, 20)
	sim := blackhole.New(1280, 1024)
	h := New(screen, sim, 60, 0, nil)

	h.Frame()
	if n := len(sim.Particles()); n != blackhole.DefaultReseedCount {
		t.Fatalf("first frame should reseed the population, got %d", n)
	}

	if !h.handleRune(' ') || !sim.Config().Paused {
		t.Fatal("space should pause")
	}
	before := sim.Stats().Steps
	h.handleRune('n')
	h.Frame()
	if sim.Stats().Steps != before+1 || !sim.Config().Paused {
		t.Fatalf("single step should advance once and stay paused, steps %d -> %d", before, sim.Stats().Steps)
	}

	h.handleRune('k')
	if sim.Config().KillBoundary {
		t.Fatal("k should switch to the sticky boundary")
	}
	g := sim.Config().Well.Gravity
	h.handleRune('+')
	if sim.Config().Well.Gravity != g+100 {
		t.Fatalf("+ should raise gravity, got %v", sim.Config().Well.Gravity)
	}
	h.handleRune('r')
	if len(sim.Particles()) != 0 || !sim.Config().KillBoundary {
		t.Fatal("r should reset to defaults")
	}
	if h.handleRune('q') {
		t.Fatal("q should quit")
	}
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}
