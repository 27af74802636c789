package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"black-hole/internal/core"
	"black-hole/internal/session"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "blackhole version "+version) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunCmdSavesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final.yaml")
	out, err := execute(t, "run", "--no-session", "--steps", "25", "--save", path, "--set", "kill_boundary=false")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "steps=25") {
		t.Fatalf("unexpected summary %q", out)
	}

	st, err := session.Load(path)
	if err != nil {
		t.Fatalf("load saved state: %v", err)
	}
	if st.Config.KillBoundary {
		t.Fatal("override should be persisted")
	}
	if len(st.Particles) == 0 {
		t.Fatal("expected a live population after 25 steps")
	}
}

func TestRunCmdDeterministic(t *testing.T) {
	a, err := execute(t, "run", "--no-session", "--steps", "200", "--seed", "5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := execute(t, "run", "--no-session", "--steps", "200", "--seed", "5")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if a != b {
		t.Fatalf("equal seeds should print equal summaries:\n%s\n%s", a, b)
	}
}

func TestRunCmdRejectsNegativeSteps(t *testing.T) {
	if _, err := execute(t, "run", "--no-session", "--steps", "-1"); err == nil {
		t.Fatal("expected an error for negative steps")
	}
}

func TestRunCmdResumesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if _, err := execute(t, "run", "--session", path, "--steps", "3", "--save", path); err != nil {
		t.Fatalf("first run: %v", err)
	}
	saved, err := session.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := execute(t, "run", "--session", path, "--steps", "0", "--save", path); err != nil {
		t.Fatalf("second run: %v", err)
	}
	resumed, err := session.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(resumed.Particles) != len(saved.Particles) {
		t.Fatalf("zero-step resume should keep the population: %d vs %d", len(resumed.Particles), len(saved.Particles))
	}
}

func TestParamsCmd(t *testing.T) {
	out, err := execute(t, "params", "--no-session", "--set", "well_gravity=750")
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if !strings.Contains(out, "well_gravity") || !strings.Contains(out, "750") {
		t.Fatalf("unexpected params output:\n%s", out)
	}

	out, err = execute(t, "params", "--no-session", "--json")
	if err != nil {
		t.Fatalf("params --json: %v", err)
	}
	var snap core.ParameterSnapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := snap.LookupParameter("kill_boundary"); !ok {
		t.Fatal("kill_boundary missing from JSON output")
	}
}

func TestUnknownSim(t *testing.T) {
	if _, err := execute(t, "run", "--no-session", "--sim", "nope"); err == nil {
		t.Fatal("expected unknown sim error")
	}
}

func TestSweepCmd(t *testing.T) {
	out, err := execute(t, "sweep", "--no-session", "--steps", "50", "--gravity", "500,1500", "--radius", "10", "--workers", "2", "--top", "0")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "1 ") {
		t.Fatalf("rows should be ranked, got %q", lines[1])
	}
}

func TestSweepCmdFlagsRunaway(t *testing.T) {
	out, err := execute(t, "sweep", "--no-session", "--steps", "400", "--gravity", "5000", "--radius", "40", "--max-particles", "300", "--top", "0")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !strings.Contains(out, "(runaway)") {
		t.Fatalf("an exploding scenario should be reported as runaway:\n%s", out)
	}
}
