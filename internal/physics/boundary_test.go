package physics

import (
	"math"
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
)

func TestConfineSign(t *testing.T) {
	b := dynamo.Viewport{Width: 800, Height: 600}.Bounds(20)

	tests := []struct {
		name  string
		pos   dynamo.Vec2
		signX int
		signY int
	}{
		{"left of bounds", dynamo.Vec2{X: -b.XMax - 10}, 1, 0},
		{"right of bounds", dynamo.Vec2{X: b.XMax + 10}, -1, 0},
		{"below bounds", dynamo.Vec2{Y: -b.YMax - 10}, 0, 1},
		{"above bounds", dynamo.Vec2{Y: b.YMax + 10}, 0, -1},
		{"corner", dynamo.Vec2{X: b.XMax + 5, Y: -b.YMax - 5}, -1, 1},
		{"inside", dynamo.Vec2{X: 12, Y: -30}, 0, 0},
		{"on edge", dynamo.Vec2{X: b.XMax, Y: -b.YMax}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dv := Confine(tt.pos, b, dt)
			if sign(dv.X) != tt.signX || sign(dv.Y) != tt.signY {
				t.Errorf("got %v, want signs (%d,%d)", dv, tt.signX, tt.signY)
			}
		})
	}
}

func TestConfineProportional(t *testing.T) {
	b := dynamo.Bounds{XMax: 100, YMax: 100}
	near := Confine(dynamo.Vec2{X: 110}, b, dt)
	far := Confine(dynamo.Vec2{X: 150}, b, dt)
	if math.Abs(far.X-5*near.X) > 1e-12 {
		t.Errorf("expected 5x stronger pull, got near=%g far=%g", near.X, far.X)
	}
	if want := -10 * dt; near.X != want {
		t.Errorf("expected %g, got %g", want, near.X)
	}
}

func TestAccumulateConfinementSkipsWithoutViewport(t *testing.T) {
	snap := NewSnapshot([]dynamo.Vec2{{X: 1e6}})
	out := make([]dynamo.Vec2, 1)
	AccumulateConfinement(snap, dynamo.Bounds{}, dt, out)
	if out[0].Len2() != 0 {
		t.Errorf("expected no correction without bounds, got %v", out[0])
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
