//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"black-hole/internal/render"
	"black-hole/internal/session"
	"black-hole/internal/sims/blackhole"
	"black-hole/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
)

const (
	hudWidth      = 280
	noticeFrames  = 180
	sessionFilter = "*.yaml"
)

// Game adapts the particle simulation to the ebiten.Game interface.
type Game struct {
	sim     *blackhole.Simulation
	painter *render.Painter
	heat    *render.Heatmap
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	scale       int
	seed        int64
	sessionPath string
	tickOnce    bool
	showHeat    bool
	snapBuf     []blackhole.ParticleView
}

// New constructs a Game for the provided simulation.
func New(sim *blackhole.Simulation, cfg *Config, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	path, err := cfg.SessionPath()
	if err != nil {
		log.Warn("no default session path", "err", err)
	}
	return &Game{
		sim:         sim,
		painter:     render.NewPainter(),
		heat:        render.NewHeatmap(sim.Size().W, sim.Size().H),
		hud:         ui.NewHUD(sim, hudWidth),
		overlay:     ui.NewOverlay(),
		log:         log,
		scale:       scale,
		seed:        cfg.Seed,
		sessionPath: path,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Info("simulation reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveDialog()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.loadDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sim.Toggle("paused")
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.sim.Toggle("kill_boundary")
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.sim.Toggle("dark_mode")
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.tickOnce = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset(g.seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.hud.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.showHeat = !g.showHeat
	}

	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce && g.sim.Config().Paused {
		g.sim.Config().Paused = false
		g.sim.Step()
		g.sim.Config().Paused = true
	} else {
		g.sim.Step()
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.SnapshotInto(g.snapBuf)
	g.snapBuf = snap.Particles
	g.painter.Draw(screen, snap)
	if g.showHeat {
		g.heat.Draw(screen, snap)
	}
	g.hud.Draw(screen, render.ThemeFor(snap.DarkMode))
	g.overlay.Draw(screen, snap)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W, s.H
}

func (g *Game) saveDialog() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Session"),
		zenity.Filename(g.sessionPath),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "Session", Patterns: []string{sessionFilter}}},
	)
	if err != nil {
		g.dialogFailed("save", err)
		return
	}
	if err := session.Save(path, g.sim.State()); err != nil {
		g.log.Error("save failed", "path", path, "err", err)
		g.overlay.Notify("save failed: "+err.Error(), noticeFrames)
		return
	}
	g.sessionPath = path
	g.log.Info("session saved", "path", path)
	g.overlay.Notify("saved "+filepath.Base(path), noticeFrames)
}

func (g *Game) loadDialog() {
	path, err := zenity.SelectFile(
		zenity.Title("Load Session"),
		zenity.Filename(g.sessionPath),
		zenity.FileFilters{{Name: "Session", Patterns: []string{sessionFilter}}},
	)
	if err != nil {
		g.dialogFailed("load", err)
		return
	}
	st, err := session.Load(path)
	if err != nil {
		g.log.Error("load failed", "path", path, "err", err)
		g.overlay.Notify("load failed: "+err.Error(), noticeFrames)
		return
	}
	// The window keeps its size; only the simulation contents change.
	st.Config.Width, st.Config.Height = g.sim.Size().W, g.sim.Size().H
	g.sim.Restore(st)
	g.sessionPath = path
	g.log.Info("session loaded", "path", path, "particles", len(st.Particles))
	g.overlay.Notify(fmt.Sprintf("loaded %s (%d particles)", filepath.Base(path), len(st.Particles)), noticeFrames)
}

func (g *Game) dialogFailed(action string, err error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	g.log.Warn("file dialog failed", "action", action, "err", err)
	g.overlay.Notify(action+" dialog unavailable", noticeFrames)
}

// Run opens the window and blocks until it is closed.
func Run(sim *blackhole.Simulation, cfg *Config, log *slog.Logger) error {
	game := New(sim, cfg, log)
	size := sim.Size()

	ebiten.SetWindowTitle("Black Hole Simulation")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*game.scale, size.H*game.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game.log.Info("window opened", "w", size.W, "h", size.H, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
