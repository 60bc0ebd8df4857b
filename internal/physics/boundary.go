package physics

import "github.com/san-kum/shipwake/internal/dynamo"

// Confine returns the restoring delta for a particle that has crossed the
// bounds. Inside the bounds it is zero; outside it grows with the overshoot.
func Confine(pos dynamo.Vec2, b dynamo.Bounds, dt float64) dynamo.Vec2 {
	var dv dynamo.Vec2
	if pos.X < -b.XMax {
		dv.X = dt * (-b.XMax - pos.X)
	} else if pos.X > b.XMax {
		dv.X = dt * (b.XMax - pos.X)
	}
	if pos.Y < -b.YMax {
		dv.Y = dt * (-b.YMax - pos.Y)
	} else if pos.Y > b.YMax {
		dv.Y = dt * (b.YMax - pos.Y)
	}
	return dv
}

// AccumulateConfinement adds Confine for every particle. Invalid bounds (no
// viewport this tick) skip the pass.
func AccumulateConfinement(snap Snapshot, b dynamo.Bounds, dt float64, out []dynamo.Vec2) {
	if !b.Valid() {
		return
	}
	for i := 0; i < snap.Len(); i++ {
		out[i] = out[i].Add(Confine(snap.At(i), b, dt))
	}
}
