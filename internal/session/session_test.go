package session

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"black-hole/internal/sims/blackhole"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	sim := blackhole.New(640, 480)
	sim.Config().KillBoundary = false
	sim.SetFloatParameter("well_gravity", 1234.5)
	for i := 0; i < 30; i++ {
		sim.Step()
	}

	path := filepath.Join(t.TempDir(), "nested", FileName)
	if err := Save(path, sim.State()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temporary file should be renamed away")
	}

	st, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Config != *sim.Config() {
		t.Fatalf("config mismatch:\n got %+v\nwant %+v", st.Config, *sim.Config())
	}
	if !slices.Equal(st.Particles, sim.Particles()) {
		t.Fatal("particles did not survive the round trip")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	doc := "config:\n  max_dist: 700\nparticles: []\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Config.MaxDist != 700 {
		t.Fatalf("expected max_dist 700, got %v", st.Config.MaxDist)
	}
	if st.Config.Well.Gravity != 500 || st.Config.MinSpawnDist != 50 {
		t.Fatalf("missing keys should keep defaults, got %+v", st.Config)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	st, ok, err := LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	if err != nil || ok {
		t.Fatalf("missing file should yield defaults, got ok=%v err=%v", ok, err)
	}
	if st.Config != blackhole.DefaultConfig() {
		t.Fatal("missing file should yield the default config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("config: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadOrDefault(bad); err == nil || !strings.Contains(err.Error(), "parsing session") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
