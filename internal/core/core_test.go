package core

import (
	"testing"
	"time"
)

func TestByteGridIncSaturates(t *testing.T) {
	g := NewByteGrid(4, 3)
	for i := 0; i < 300; i++ {
		g.Inc(1, 2)
	}
	if got := g.At(1, 2); got != 255 {
		t.Fatalf("expected saturation at 255, got %d", got)
	}
	if g.Inc(4, 0) || g.Inc(-1, 0) || g.Inc(0, 3) {
		t.Fatal("out-of-range Inc should report false")
	}
	if got := g.At(9, 9); got != 0 {
		t.Fatalf("out-of-range At should be 0, got %d", got)
	}
}

func TestByteGridResize(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Inc(0, 0)
	g.Resize(2, 2)
	if g.At(0, 0) != 0 {
		t.Fatal("Resize with same dimensions should clear")
	}
	g.Resize(5, 0)
	if g.W != 5 || g.H != 1 || len(g.Cells()) != 5 {
		t.Fatalf("unexpected dimensions after resize: %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStepGatesTicks(t *testing.T) {
	fs := NewFixedStep(1000)
	if !fs.ShouldStep() {
		t.Fatal("first call should step because the accumulator is primed")
	}
	time.Sleep(3 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after waiting longer than one tick")
	}

	slow := NewFixedStep(1)
	slow.ShouldStep()
	if slow.ShouldStep() {
		t.Fatal("a 1 TPS ticker should not step twice in quick succession")
	}
}

func TestRegistryLookup(t *testing.T) {
	Register("", nil)
	if _, ok := Lookup(""); ok {
		t.Fatal("empty names must not register")
	}
}

func TestLookupParameter(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Well",
		Params: []Parameter{{Key: "well_radius", Type: ParamTypeFloat, Value: "5"}},
	}}}
	p, ok := snap.LookupParameter("well_radius")
	if !ok || p.Value != "5" {
		t.Fatalf("expected well_radius=5, got %+v (ok=%v)", p, ok)
	}
	if _, ok := snap.LookupParameter("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
