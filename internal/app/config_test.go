package app

import (
	"path/filepath"
	"testing"

	"black-hole/internal/session"
	"black-hole/internal/sims/blackhole"

	"github.com/spf13/pflag"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"--tps", "30", "--seed", "9", "--set", "well_gravity=800", "--set", "kill_boundary=false", "--no-session"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TPS != 30 || cfg.Seed != 9 || !cfg.NoSession || len(cfg.Overrides) != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestOverrideMap(t *testing.T) {
	cfg := NewConfig()
	cfg.Overrides = []string{"well_gravity = 800", "paused=true"}
	m, err := cfg.OverrideMap()
	if err != nil {
		t.Fatalf("override map: %v", err)
	}
	if m["well_gravity"] != "800" || m["paused"] != "true" || m["seed"] != "1337" {
		t.Fatalf("unexpected overrides %v", m)
	}

	for _, bad := range []string{"novalue", "=5"} {
		cfg.Overrides = []string{bad}
		if _, err := cfg.OverrideMap(); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestSetupWithoutSession(t *testing.T) {
	cfg := NewConfig()
	cfg.NoSession = true
	cfg.Overrides = []string{"well_radius=9"}
	sim, err := Setup(cfg, nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if sim.Config().Well.Radius != 9 || sim.Config().Seed != 1337 {
		t.Fatalf("overrides not applied: %+v", sim.Config())
	}
}

func TestSetupRestoresSessionUnderOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	saved := blackhole.New(1280, 1024)
	saved.Config().Well.Gravity = 1234
	saved.Config().KillBoundary = false
	saved.Spawn(4)
	if err := session.Save(path, saved.State()); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg := NewConfig()
	cfg.Session = path
	cfg.Overrides = []string{"kill_boundary=true"}
	sim, err := Setup(cfg, nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if len(sim.Particles()) != 4 || sim.Config().Well.Gravity != 1234 {
		t.Fatalf("session not restored: %d particles, gravity %v", len(sim.Particles()), sim.Config().Well.Gravity)
	}
	if !sim.Config().KillBoundary {
		t.Fatal("--set should win over the saved session")
	}
}

func TestSetupUnknownSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if _, err := Setup(cfg, nil); err == nil {
		t.Fatal("expected unknown sim error")
	}
}
