package tui

import (
	"context"
	"log/slog"
	"time"

	"black-hole/internal/core"
	"black-hole/internal/sims/blackhole"

	"github.com/gdamore/tcell/v2"
)

// Host drives a simulation inside a terminal: it polls input, steps at a
// fixed rate and redraws every tick.
type Host struct {
	screen   tcell.Screen
	sim      *blackhole.Simulation
	renderer *Renderer
	fixed    *core.FixedStep
	log      *slog.Logger

	seed     int64
	stepOnce bool
	snapBuf  []blackhole.ParticleView
}

// New wires a host around an initialised screen.
func New(screen tcell.Screen, sim *blackhole.Simulation, tps int, seed int64, log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Host{
		screen:   screen,
		sim:      sim,
		renderer: NewRenderer(),
		fixed:    core.NewFixedStep(tps),
		log:      log,
		seed:     seed,
	}
}

// Run loops until ctx is cancelled or the user quits. The screen is left
// for the caller to Fini.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.fixed.Interval())
	defer ticker.Stop()

	h.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				h.log.Info("terminal host quit", "steps", h.sim.Stats().Steps)
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Frame advances the simulation if a tick is due and redraws.
func (h *Host) Frame() {
	if h.fixed.ShouldStep() || h.stepOnce {
		if h.stepOnce && h.sim.Config().Paused {
			h.sim.Config().Paused = false
			h.sim.Step()
			h.sim.Config().Paused = true
		} else {
			h.sim.Step()
		}
		h.stepOnce = false
	}
	snap := h.sim.SnapshotInto(h.snapBuf)
	h.snapBuf = snap.Particles
	h.renderer.Draw(h.screen, snap)
	h.screen.Show()
}

// HandleEvent applies an input event and reports whether the host should
// keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		h.sim.Toggle("paused")
	case 'k', 'K':
		h.sim.Toggle("kill_boundary")
		h.log.Debug("boundary mode toggled", "kill", h.sim.Config().KillBoundary)
	case 'd', 'D':
		h.sim.Toggle("dark_mode")
	case 'n', 'N':
		h.stepOnce = true
	case 'r', 'R':
		h.sim.Reset(h.seed)
		h.log.Info("simulation reset", "seed", h.seed)
	case '+', '=':
		h.sim.SetFloatParameter("well_gravity", h.sim.Config().Well.Gravity+100)
	case '-', '_':
		h.sim.SetFloatParameter("well_gravity", h.sim.Config().Well.Gravity-100)
	}
	return true
}
