package physics

import (
	"math"

	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/world"
)

// ShipField is the ship's hull approximated by a grid of repelling points
// laid out in the ship's frame.
type ShipField struct {
	params ShipParams
	points []dynamo.Vec2
}

func NewShipField(ship world.Ship, p ShipParams) *ShipField {
	return &ShipField{params: p, points: SampleGrid(ship, p)}
}

// SampleGrid returns the hull sample points: i in [-Across, Across) along
// the right axis and j in [-Along, Along) along the forward axis.
func SampleGrid(ship world.Ship, p ShipParams) []dynamo.Vec2 {
	pts := make([]dynamo.Vec2, 0, 4*p.Across*p.Along)
	for i := -p.Across; i < p.Across; i++ {
		for j := -p.Along; j < p.Along; j++ {
			pts = append(pts, ship.Local(p.Step*float64(i), p.Step*float64(j)))
		}
	}
	return pts
}

func (f *ShipField) Points() []dynamo.Vec2 { return f.points }

// At returns the delta on a single position. Every sample point in range
// contributes; overlapping points stack.
func (f *ShipField) At(pos dynamo.Vec2, dt float64) dynamo.Vec2 {
	var dv dynamo.Vec2
	scale := dt * f.params.Strength
	for _, s := range f.points {
		d := pos.Sub(s)
		dist2 := d.Len2()
		if dist2 >= f.params.Radius2 {
			continue
		}
		k := scale / math.Max(dist2, f.params.MinDist2)
		dv.X += d.X * k
		dv.Y += d.Y * k
	}
	return dv
}

// Accumulate adds the hull delta of every particle to out. A nil field
// (no ship) is a no-op.
func (f *ShipField) Accumulate(snap Snapshot, dt float64, out []dynamo.Vec2) {
	if f == nil {
		return
	}
	for i := 0; i < snap.Len(); i++ {
		out[i] = out[i].Add(f.At(snap.At(i), dt))
	}
}
