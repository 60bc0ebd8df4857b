package metrics

import (
	"math"

	"github.com/san-kum/shipwake/internal/dynamo"
)

// Saturation is the fraction of velocity components sitting at the clamp
// limit, over all observed ticks. High values mean the clamp, not the field,
// is setting speeds.
type Saturation struct {
	name       string
	tolerance  float64
	saturated  int
	components int
}

func NewSaturation() *Saturation {
	return &Saturation{name: "saturation", tolerance: 1e-9}
}

func (s *Saturation) Name() string { return s.name }

func (s *Saturation) Observe(f *dynamo.Frame) {
	if f.MaxSpeed <= 0 {
		return
	}
	limit := f.MaxSpeed - s.tolerance
	for _, v := range f.Velocities {
		if math.Abs(v.X) >= limit {
			s.saturated++
		}
		if math.Abs(v.Y) >= limit {
			s.saturated++
		}
		s.components += 2
	}
}

func (s *Saturation) Value() float64 {
	if s.components == 0 {
		return 0
	}
	return float64(s.saturated) / float64(s.components)
}

func (s *Saturation) Reset() {
	s.saturated = 0
	s.components = 0
}

// Containment is the fraction of particle-ticks inside the confinement box.
// Ticks without bounds are not counted.
type Containment struct {
	name    string
	inside  int
	samples int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(f *dynamo.Frame) {
	if !f.Bounds.Valid() {
		return
	}
	for _, p := range f.Positions {
		if f.Bounds.Contains(p) {
			c.inside++
		}
		c.samples++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1
	}
	return float64(c.inside) / float64(c.samples)
}

func (c *Containment) Reset() {
	c.inside = 0
	c.samples = 0
}
