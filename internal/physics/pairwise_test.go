package physics

import (
	"math"
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
)

const dt = 1.0 / 60.0

func TestPairwiseFormula(t *testing.T) {
	a := dynamo.Vec2{X: 30, Y: 40}
	b := dynamo.Vec2{X: 0, Y: 0}
	snap := NewSnapshot([]dynamo.Vec2{a, b})
	p := DefaultParams()

	got := Pairwise(snap, 0, dt, p)

	d := a.Sub(b)
	scale := RepelStrength * dt / d.Len2()
	want := d.Scale(scale)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}

	// directed away from b along the connecting line
	if got.Dot(d) <= 0 {
		t.Error("force should point away from the other particle")
	}
	cross := got.X*d.Y - got.Y*d.X
	if math.Abs(cross) > 1e-12 {
		t.Errorf("force not collinear with separation, cross=%g", cross)
	}
}

func TestPairwiseCutoff(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name    string
		pos     dynamo.Vec2
		nonzero bool
	}{
		{"exactly at radius", dynamo.Vec2{X: 300}, false},
		{"just inside", dynamo.Vec2{X: math.Sqrt(89999.99)}, true},
		{"beyond", dynamo.Vec2{X: 180, Y: 240.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewSnapshot([]dynamo.Vec2{tt.pos, {}})
			got := Pairwise(snap, 0, dt, p)
			if (got.Len2() > 0) != tt.nonzero {
				t.Errorf("dist2=%v: got %v, nonzero=%v", tt.pos.Len2(), got, tt.nonzero)
			}
			if tt.nonzero && got.X <= 0 {
				t.Errorf("expected repulsion along +x, got %v", got)
			}
		})
	}
}

func TestPairwiseCoincidentIsFinite(t *testing.T) {
	snap := NewSnapshot([]dynamo.Vec2{{X: 5, Y: 5}, {X: 5, Y: 5}})
	got := Pairwise(snap, 0, dt, DefaultParams())
	if !got.IsValid() {
		t.Fatalf("coincident particles produced %v", got)
	}
	other := Pairwise(snap, 1, dt, DefaultParams())
	if got.X >= 0 || other.X <= 0 {
		t.Errorf("coincident pair should split along x, got %v and %v", got, other)
	}
	if got.Y != 0 || got.Add(other).Len2() != 0 {
		t.Errorf("split should be opposite and equal, got %v and %v", got, other)
	}
}

func TestPairwiseExcludesSelfOnly(t *testing.T) {
	snap := NewSnapshot([]dynamo.Vec2{{X: 0}})
	if got := Pairwise(snap, 0, dt, DefaultParams()); got.Len2() != 0 {
		t.Errorf("lone particle should feel nothing, got %v", got)
	}
}

func TestPairwiseSmoothCutoffTapers(t *testing.T) {
	p := DefaultParams()
	p.SmoothCutoff = true

	edge := NewSnapshot([]dynamo.Vec2{{X: 299.9}, {}})
	mid := NewSnapshot([]dynamo.Vec2{{X: 100}, {}})

	hard := DefaultParams()
	if got := Pairwise(edge, 0, dt, p).X; got >= Pairwise(edge, 0, dt, hard).X*0.01 {
		t.Errorf("taper should nearly vanish at the edge, got %g", got)
	}
	if Pairwise(mid, 0, dt, p) != Pairwise(mid, 0, dt, hard) {
		t.Error("taper should not touch the inner region")
	}
}

func TestAccumulatePairwiseAdds(t *testing.T) {
	snap := NewSnapshot([]dynamo.Vec2{{X: -10}, {X: 10}})
	out := []dynamo.Vec2{{X: 1}, {X: 1}}
	AccumulatePairwise(snap, dt, DefaultParams(), out)

	if out[0].X >= 1 || out[1].X <= 1 {
		t.Errorf("expected particles pushed apart on top of existing delta, got %v", out)
	}
}
