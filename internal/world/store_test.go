package world

import (
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
)

func TestStoreSpawnGet(t *testing.T) {
	s := NewStore()

	a := s.Spawn(dynamo.Vec2{X: 1, Y: 2}, dynamo.Vec2{X: 1, Y: 1})
	b := s.Spawn(dynamo.Vec2{X: 3, Y: 4}, dynamo.Vec2{})

	if a == b {
		t.Fatal("handles must be unique")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 particles, got %d", s.Len())
	}

	p, ok := s.Get(b)
	if !ok {
		t.Fatal("expected particle b to exist")
	}
	if p.Pos != (dynamo.Vec2{X: 3, Y: 4}) {
		t.Errorf("unexpected position %v", p.Pos)
	}
}

func TestStoreDespawnKeepsSlotsConsistent(t *testing.T) {
	s := NewStore()
	hs := make([]Handle, 5)
	for i := range hs {
		hs[i] = s.Spawn(dynamo.Vec2{X: float64(i)}, dynamo.Vec2{})
	}

	if !s.Despawn(hs[1]) {
		t.Fatal("despawn of live handle should succeed")
	}
	if s.Despawn(hs[1]) {
		t.Error("second despawn of same handle should fail")
	}
	if s.Has(hs[1]) {
		t.Error("despawned handle still present")
	}

	for i, h := range s.Handles() {
		p, ok := s.Get(h)
		if !ok {
			t.Fatalf("slot %d handle %d missing from index", i, h)
		}
		if p.Pos != s.Positions()[i] {
			t.Errorf("slot %d position mismatch", i)
		}
	}

	moved, _ := s.Get(hs[4])
	if moved.Pos.X != 4 {
		t.Errorf("moved particle lost its state: %v", moved.Pos)
	}
}

func TestStoreDespawnBatch(t *testing.T) {
	s := NewStore()
	hs := make([]Handle, 6)
	for i := range hs {
		hs[i] = s.Spawn(dynamo.Vec2{X: float64(i)}, dynamo.Vec2{})
	}

	n := s.DespawnBatch([]Handle{hs[0], hs[3], hs[3], Handle(999)})
	if n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 remaining, got %d", s.Len())
	}

	want := []float64{1, 2, 4, 5}
	for i, p := range s.Positions() {
		if p.X != want[i] {
			t.Errorf("slot %d: expected x=%v, got %v", i, want[i], p.X)
		}
	}
	for i, h := range s.Handles() {
		if got, _ := s.Get(h); got.Pos != s.Positions()[i] {
			t.Errorf("index stale for handle %d", h)
		}
	}
}

func TestStoreHandlesNotReused(t *testing.T) {
	s := NewStore()
	a := s.Spawn(dynamo.Vec2{}, dynamo.Vec2{})
	s.Despawn(a)
	s.Clear()
	b := s.Spawn(dynamo.Vec2{}, dynamo.Vec2{})
	if a == b {
		t.Error("handle reused after despawn")
	}
}

func TestStoreSetters(t *testing.T) {
	s := NewStore()
	h := s.Spawn(dynamo.Vec2{}, dynamo.Vec2{})

	if !s.SetVelocity(h, dynamo.Vec2{X: 5}) || !s.SetPosition(h, dynamo.Vec2{Y: 7}) {
		t.Fatal("setters should succeed on live handle")
	}
	p, _ := s.Get(h)
	if p.Vel.X != 5 || p.Pos.Y != 7 {
		t.Errorf("setters did not apply: %+v", p)
	}
	if s.SetVelocity(Handle(42), dynamo.Vec2{}) {
		t.Error("setter on unknown handle should fail")
	}

	count := 0
	s.Each(func(Particle) { count++ })
	if count != 1 {
		t.Errorf("expected 1 visit, got %d", count)
	}
}
