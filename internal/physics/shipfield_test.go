package physics

import (
	"math"
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/world"
)

func TestSampleGridShape(t *testing.T) {
	p := DefaultShipParams()
	pts := SampleGrid(world.Ship{}, p)
	if len(pts) != 144 {
		t.Fatalf("expected 144 sample points, got %d", len(pts))
	}

	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, s := range pts {
		minX, maxX = math.Min(minX, s.X), math.Max(maxX, s.X)
		minY, maxY = math.Min(minY, s.Y), math.Max(maxY, s.Y)
	}
	if minX != -40 || maxX != 30 || minY != -90 || maxY != 80 {
		t.Errorf("unexpected extent x[%v,%v] y[%v,%v]", minX, maxX, minY, maxY)
	}
}

func TestSampleGridRotates(t *testing.T) {
	p := DefaultShipParams()
	ship := world.Ship{Pos: dynamo.Vec2{X: 5, Y: 5}, Heading: math.Pi / 2}
	pts := SampleGrid(ship, p)

	// facing -x, the long axis of the hull lies along x
	var spanX, spanY float64
	for _, s := range pts {
		spanX = math.Max(spanX, math.Abs(s.X-5))
		spanY = math.Max(spanY, math.Abs(s.Y-5))
	}
	if spanX < 80 || spanY > 40+1e-9 {
		t.Errorf("hull not rotated: spanX=%v spanY=%v", spanX, spanY)
	}
}

func TestShipFieldCoversGridBeyondCenter(t *testing.T) {
	p := DefaultShipParams()
	f := NewShipField(world.Ship{}, p)

	// stern grid point (i=0, j=-9), 90 units from center
	pos := dynamo.Vec2{X: 0, Y: -90}
	if pos.Len2() < p.Radius2 {
		t.Fatal("test point must lie outside a single-point radius")
	}

	dv := f.At(pos, dt)
	if !dv.IsValid() {
		t.Fatalf("delta not finite: %v", dv)
	}
	if dv.Len2() == 0 {
		t.Fatal("expected nonzero push from the extended hull")
	}
	if dv.Y >= 0 {
		t.Errorf("stern particle should be pushed aft, got %v", dv)
	}
}

func TestShipFieldStacksContributions(t *testing.T) {
	p := DefaultShipParams()
	f := NewShipField(world.Ship{}, p)

	pos := dynamo.Vec2{X: 0, Y: -95}
	d := pos.Sub(dynamo.Vec2{X: 0, Y: -90})
	single := d.Scale(dt * p.Strength / d.Len2())

	total := f.At(pos, dt)
	if total.Y >= single.Y {
		t.Errorf("expected stacked push %v to exceed nearest point alone %v", total, single)
	}
}

func TestShipFieldNilIsNoop(t *testing.T) {
	var f *ShipField
	out := []dynamo.Vec2{{X: 1}}
	f.Accumulate(NewSnapshot([]dynamo.Vec2{{}}), dt, out)
	if out[0] != (dynamo.Vec2{X: 1}) {
		t.Errorf("nil field changed deltas: %v", out)
	}
}

func TestShipFieldIgnoresFarParticles(t *testing.T) {
	f := NewShipField(world.Ship{}, DefaultShipParams())
	if dv := f.At(dynamo.Vec2{X: 500, Y: 500}, dt); dv.Len2() != 0 {
		t.Errorf("far particle should be untouched, got %v", dv)
	}
}
