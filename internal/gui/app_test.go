package gui

import (
	"testing"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/experiment"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, _ := config.GetPreset("calm")
	cfg.Particles.Count = 0
	exp, err := experiment.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a := NewApp(exp)
	a.Layout(800, 600)
	return a
}

func TestClickSpawnsAtCursor(t *testing.T) {
	a := newTestApp(t)
	a.handle(frameInput{x: 400, y: 300, primaryDown: true})

	st := a.exp.GetSimulator().World().Particles
	if st.Len() != 1 {
		t.Fatalf("expected one particle, got %d", st.Len())
	}
	if p := st.Positions()[0]; p.Dist2(dynamo.Vec2{}) > 1 {
		t.Errorf("spawned at %v, want near origin", p)
	}

	// held, no new edge
	a.handle(frameInput{x: 400, y: 300})
	if st.Len() != 1 {
		t.Errorf("held button spawned again")
	}
}

func TestRightClickClears(t *testing.T) {
	a := newTestApp(t)
	st := a.exp.GetSimulator().World().Particles
	st.Spawn(dynamo.Vec2{X: 5}, dynamo.Vec2{})
	st.Spawn(dynamo.Vec2{X: 200}, dynamo.Vec2{})

	a.handle(frameInput{x: 400, y: 300, secondaryDown: true})
	if st.Len() != 1 {
		t.Errorf("expected the near particle removed, got %d left", st.Len())
	}
}

func TestPauseAndQuit(t *testing.T) {
	a := newTestApp(t)
	a.handle(frameInput{pause: true})
	ticks := a.exp.GetSimulator().Ticks()
	a.handle(frameInput{})
	if a.exp.GetSimulator().Ticks() != ticks {
		t.Error("paused app should not tick")
	}

	a.handle(frameInput{quit: true})
	if !a.quit {
		t.Error("quit should be latched")
	}
}

func TestClearAndAimToggle(t *testing.T) {
	a := newTestApp(t)
	st := a.exp.GetSimulator().World().Particles
	st.Spawn(dynamo.Vec2{X: 5}, dynamo.Vec2{})
	st.Spawn(dynamo.Vec2{X: 200}, dynamo.Vec2{})

	a.handle(frameInput{x: 400, y: 300, clear: true, aim: true})
	if st.Len() != 0 {
		t.Errorf("clear should remove every particle, %d left", st.Len())
	}
	if a.aim || a.input.Next(a.dt).Aim {
		t.Error("aim toggle should turn mouse aim off")
	}
}

func TestLayoutSetsViewport(t *testing.T) {
	a := newTestApp(t)
	w, h := a.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("layout should follow the window, got %dx%d", w, h)
	}
	in := a.input.Next(a.dt)
	if in.Viewport != (dynamo.Viewport{Width: 1024, Height: 768}) {
		t.Errorf("viewport not updated: %+v", in.Viewport)
	}
}

func TestSpeedColor(t *testing.T) {
	if c := speedColor(dynamo.Vec2{}, 100); c != ColWater {
		t.Errorf("still particle should be water colored, got %v", c)
	}
	if c := speedColor(dynamo.Vec2{X: 100, Y: 100}, 100); c.R != ColFast.R || c.B != ColFast.B {
		t.Errorf("clamped particle should be fast colored, got %v", c)
	}
}
