package metrics

import "github.com/san-kum/shipwake/internal/dynamo"

// Count reports the live particle count of the last tick.
type Count struct {
	name string
	last int
}

func NewCount() *Count { return &Count{name: "count"} }

func (c *Count) Name() string            { return c.name }
func (c *Count) Observe(f *dynamo.Frame) { c.last = len(f.Positions) }
func (c *Count) Value() float64          { return float64(c.last) }
func (c *Count) Reset()                  { c.last = 0 }

// Defaults is the metric set attached to every run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewCount(),
		NewMeanSpeed(),
		NewKineticEnergy(),
		NewSaturation(),
		NewContainment(),
	}
}

// New returns the named metric.
func New(name string) (dynamo.Metric, bool) {
	switch name {
	case "count":
		return NewCount(), true
	case "mean_speed":
		return NewMeanSpeed(), true
	case "kinetic_energy":
		return NewKineticEnergy(), true
	case "saturation":
		return NewSaturation(), true
	case "containment":
		return NewContainment(), true
	}
	return nil, false
}

func Names() []string {
	return []string{"count", "mean_speed", "kinetic_energy", "saturation", "containment"}
}
