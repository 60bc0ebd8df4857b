package physics

import (
	"math"

	"github.com/san-kum/shipwake/internal/dynamo"
)

// Pairwise returns the repulsion delta on particle i from every other
// particle in the snapshot. Slot identity, not position, excludes the self
// pair. Coincident particles have no direction, so they are pushed apart
// along x by slot order: the lower slot goes -x, the higher +x.
func Pairwise(snap Snapshot, i int, dt float64, p Params) dynamo.Vec2 {
	self := snap.At(i)
	scale := dt * p.Strength
	var dv dynamo.Vec2

	for j := 0; j < snap.Len(); j++ {
		if j == i {
			continue
		}
		d := self.Sub(snap.At(j))
		dist2 := d.Len2()
		if dist2 == 0 {
			d = dynamo.Vec2{X: math.Sqrt(p.MinDist2)}
			if i < j {
				d.X = -d.X
			}
		}
		// hard cutoff: at the radius exactly, no force
		if dist2 >= p.Radius2 {
			continue
		}
		f := scale / math.Max(dist2, p.MinDist2)
		if p.SmoothCutoff {
			f *= taper(dist2, p.Radius2)
		}
		dv.X += d.X * f
		dv.Y += d.Y * f
	}
	return dv
}

// AccumulatePairwise adds the pairwise delta of every particle to out.
func AccumulatePairwise(snap Snapshot, dt float64, p Params, out []dynamo.Vec2) {
	for i := 0; i < snap.Len(); i++ {
		out[i] = out[i].Add(Pairwise(snap, i, dt, p))
	}
}

func taper(dist2, radius2 float64) float64 {
	inner := (1 - smoothBand) * (1 - smoothBand) * radius2
	if dist2 <= inner {
		return 1
	}
	r := math.Sqrt(radius2)
	return (r - math.Sqrt(dist2)) / (smoothBand * r)
}
