package metrics

import "github.com/san-kum/shipwake/internal/dynamo"

// FrameKineticEnergy is the sum of 0.5|v|^2 over the frame, with unit mass.
func FrameKineticEnergy(f *dynamo.Frame) float64 {
	var ke float64
	for _, v := range f.Velocities {
		ke += 0.5 * v.Len2()
	}
	return ke
}

// FrameMeanSpeed is the mean |v| over the frame, or 0 when it is empty.
func FrameMeanSpeed(f *dynamo.Frame) float64 {
	if len(f.Velocities) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.Velocities {
		sum += v.Len()
	}
	return sum / float64(len(f.Velocities))
}

// KineticEnergy averages FrameKineticEnergy over the observed ticks.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
	last    float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(f *dynamo.Frame) {
	e.last = FrameKineticEnergy(f)
	e.total += e.last
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last is the energy of the most recent tick.
func (e *KineticEnergy) Last() float64 { return e.last }

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.last = 0
	e.samples = 0
}

type MeanSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(f *dynamo.Frame) {
	m.total += FrameMeanSpeed(f)
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
