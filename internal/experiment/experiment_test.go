package experiment

import (
	"context"
	"testing"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/dynamo"
)

func TestNewPopulates(t *testing.T) {
	e, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	w := e.GetSimulator().World()
	if w.Particles.Len() != 500 {
		t.Errorf("expected 500 particles, got %d", w.Particles.Len())
	}
	ship, ok := w.Ship()
	if !ok {
		t.Fatal("expected a ship")
	}
	if ship.Pos != (dynamo.Vec2{X: 0, Y: -150}) || ship.Heading != 0 {
		t.Errorf("unexpected ship start %+v", ship)
	}
	b := e.Config().ViewportSize().Bounds(20)
	for _, p := range w.Particles.Positions() {
		if !b.Contains(p) {
			t.Fatalf("batch particle outside bounds: %v", p)
		}
	}
}

func TestSameSeedSameBatch(t *testing.T) {
	e, _ := New(config.DefaultConfig())
	a, _ := e.Populate(3)
	b, _ := e.Populate(3)
	pa, pb := a.Particles.Positions(), b.Particles.Positions()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("slot %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}
}

func TestNoViewportSkipsBatch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Viewport.Width, cfg.Viewport.Height = 0, 0
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := e.GetSimulator().World().Particles.Len(); n != 0 {
		t.Errorf("expected no batch without viewport, got %d", n)
	}
}

func TestUnknownMetric(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Metrics = []string{"count", "vorticity"}
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestRunAndReset(t *testing.T) {
	cfg, _ := config.GetPreset("calm")
	cfg.Duration = 0.5
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	res, err := e.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Ticks != 30 {
		t.Errorf("expected 30 ticks, got %d", res.Ticks)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if res.Metrics["count"] != 200 {
		t.Errorf("expected count 200, got %f", res.Metrics["count"])
	}
	for _, v := range e.GetSimulator().World().Particles.Velocities() {
		if v.X > 100 || v.X < -100 || v.Y > 100 || v.Y < -100 {
			t.Fatalf("velocity %v exceeds clamp", v)
		}
	}

	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	if e.GetSimulator().Ticks() != 0 || e.GetSimulator().World().Particles.Len() != 200 {
		t.Error("reset should restore the startup world")
	}
}

func TestEnsemble(t *testing.T) {
	cfg, _ := config.GetPreset("calm")
	cfg.Duration = 0.1
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	results, err := e.Ensemble(context.Background(), 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	// members share the default headless source
	for i, r := range results {
		if r.Ticks != 6 || r.Particles != 200 {
			t.Errorf("member %d: %d ticks, %d particles", i, r.Ticks, r.Particles)
		}
	}
}

func TestRegistryVelocities(t *testing.T) {
	r := NewRegistry()
	if got := r.ListVelocities(); len(got) != 2 || got[0] != config.VelocityFixed {
		t.Errorf("unexpected velocity list %v", got)
	}
	cfg := config.DefaultConfig()
	cfg.Particles.BatchVelocity = "spiral"
	if _, err := r.GetVelocity(cfg); err == nil {
		t.Error("expected error for unknown velocity policy")
	}
}
