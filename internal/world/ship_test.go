package world

import (
	"math"
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
)

func near(a, b dynamo.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestShipAxes(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		forward dynamo.Vec2
		right   dynamo.Vec2
	}{
		{"up", 0, dynamo.Vec2{X: 0, Y: 1}, dynamo.Vec2{X: 1, Y: 0}},
		{"left", math.Pi / 2, dynamo.Vec2{X: -1, Y: 0}, dynamo.Vec2{X: 0, Y: 1}},
		{"down", math.Pi, dynamo.Vec2{X: 0, Y: -1}, dynamo.Vec2{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Ship{Heading: tt.heading}
			if !near(s.Forward(), tt.forward) {
				t.Errorf("forward: got %v, want %v", s.Forward(), tt.forward)
			}
			if !near(s.Right(), tt.right) {
				t.Errorf("right: got %v, want %v", s.Right(), tt.right)
			}
			if !near(s.Left(), tt.right.Scale(-1)) {
				t.Errorf("left: got %v", s.Left())
			}
		})
	}
}

func TestShipLocal(t *testing.T) {
	s := Ship{Pos: dynamo.Vec2{X: 10, Y: -5}}
	if got := s.Local(3, 4); !near(got, dynamo.Vec2{X: 13, Y: -1}) {
		t.Errorf("got %v", got)
	}
}

func TestWorldShipSingleton(t *testing.T) {
	w := New()
	if _, ok := w.Ship(); ok {
		t.Fatal("new world should have no ship")
	}
	w.SetShip(Ship{Pos: dynamo.Vec2{Y: -150}})
	w.SetShip(Ship{Pos: dynamo.Vec2{Y: 20}})
	s, ok := w.Ship()
	if !ok || s.Pos.Y != 20 {
		t.Errorf("expected replaced ship at y=20, got %+v", s)
	}
	w.RemoveShip()
	if _, ok := w.Ship(); ok {
		t.Error("ship should be gone")
	}
}
