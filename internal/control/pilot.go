package control

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/shipwake/internal/world"
)

const (
	DefaultForwardSpeed  = 200.0
	DefaultReverseSpeed  = 100.0
	DefaultStrafeSpeed   = 200.0
	DefaultTurnFrequency = 5.0
)

// Pilot steers the ship from held keys and turns it toward the pointer
// while the secondary button is held.
type Pilot struct {
	ForwardSpeed  float64
	ReverseSpeed  float64
	StrafeSpeed   float64
	TurnFrequency float64
}

func NewPilot() *Pilot {
	return &Pilot{
		ForwardSpeed:  DefaultForwardSpeed,
		ReverseSpeed:  DefaultReverseSpeed,
		StrafeSpeed:   DefaultStrafeSpeed,
		TurnFrequency: DefaultTurnFrequency,
	}
}

func (p *Pilot) Steer(ship *world.Ship, in Input) {
	if ship == nil || in.Dt <= 0 {
		return
	}

	forward, right := ship.Forward(), ship.Right()
	if in.Keys.Forward {
		ship.Pos = ship.Pos.Add(forward.Scale(p.ForwardSpeed * in.Dt))
	}
	if in.Keys.Back {
		ship.Pos = ship.Pos.Add(forward.Scale(-p.ReverseSpeed * in.Dt))
	}
	if in.Keys.Left {
		ship.Pos = ship.Pos.Add(right.Scale(-p.StrafeSpeed * in.Dt))
	}
	if in.Keys.Right {
		ship.Pos = ship.Pos.Add(right.Scale(p.StrafeSpeed * in.Dt))
	}

	p.aim(ship, in)
}

func (p *Pilot) aim(ship *world.Ship, in Input) {
	if !in.Aim || !in.Secondary.Held || !in.Viewport.Valid() {
		ship.Spin = 0
		return
	}
	dir := in.PointerSim().Sub(ship.Pos)
	if dir.Len2() < 1e-10 {
		return
	}

	want := math.Atan2(-dir.X, dir.Y)
	target := ship.Heading + wrapAngle(want-ship.Heading)

	// critically damped, so the hull swings round without overshoot
	spring := harmonica.NewSpring(in.Dt, p.TurnFrequency, 1.0)
	heading, spin := spring.Update(ship.Heading, ship.Spin, target)
	ship.Heading = wrapAngle(heading)
	ship.Spin = spin
}

// wrapAngle maps a to (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
