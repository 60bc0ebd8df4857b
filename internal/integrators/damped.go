package integrators

import (
	"math"

	"github.com/san-kum/shipwake/internal/dynamo"
)

const (
	DefaultDamping  = 0.999
	DefaultMaxSpeed = 100.0
)

// Damped is the velocity stage of a tick: sum the frame's deltas, bleed off
// a fixed fraction, then clamp each axis. It is a visual integrator and does
// not conserve energy.
type Damped struct {
	Damping  float64
	MaxSpeed float64
}

func NewDamped() *Damped {
	return &Damped{Damping: DefaultDamping, MaxSpeed: DefaultMaxSpeed}
}

// Apply folds deltas into vel, then damps and clamps. vel and deltas are
// slot aligned.
func (d *Damped) Apply(vel, deltas []dynamo.Vec2) {
	for i := range vel {
		v := vel[i].Add(deltas[i]).Scale(d.Damping)
		vel[i] = d.Clamp(v)
	}
}

// Kick folds deltas into vel and clamps without damping. Used for impulses
// applied after the damping stage.
func (d *Damped) Kick(vel, deltas []dynamo.Vec2) {
	for i := range vel {
		vel[i] = d.Clamp(vel[i].Add(deltas[i]))
	}
}

// Clamp limits each axis to [-MaxSpeed, MaxSpeed]. A NaN component is reset
// to zero first so the bound always holds.
func (d *Damped) Clamp(v dynamo.Vec2) dynamo.Vec2 {
	return dynamo.Vec2{X: clampAxis(v.X, d.MaxSpeed), Y: clampAxis(v.Y, d.MaxSpeed)}
}

func clampAxis(x, limit float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(-limit, math.Min(limit, x))
}

// Advance moves every position by its velocity. It must run only after all
// velocity updates of the tick are done.
func Advance(pos, vel []dynamo.Vec2, dt float64) {
	for i := range pos {
		pos[i].X += vel[i].X * dt
		pos[i].Y += vel[i].Y * dt
	}
}
