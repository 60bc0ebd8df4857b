package metrics

import "github.com/san-kum/shipwake/internal/dynamo"

// Series computes one per-tick sample from a frame.
type Series struct {
	Name string
	Fn   func(f *dynamo.Frame) float64
}

// DefaultSeries are the traces plotted after a headless run.
var DefaultSeries = []Series{
	{"count", func(f *dynamo.Frame) float64 { return float64(len(f.Positions)) }},
	{"mean_speed", FrameMeanSpeed},
	{"kinetic_energy", FrameKineticEnergy},
}

// Trace records per-tick series. With Limit > 0 only the latest Limit samples
// are kept.
type Trace struct {
	Limit  int
	series []Series
	times  []float64
	values [][]float64
}

func NewTrace(limit int, series ...Series) *Trace {
	if len(series) == 0 {
		series = DefaultSeries
	}
	return &Trace{
		Limit:  limit,
		series: series,
		values: make([][]float64, len(series)),
	}
}

func (t *Trace) OnTick(f *dynamo.Frame) {
	t.times = t.push(t.times, f.Time)
	for i, s := range t.series {
		t.values[i] = t.push(t.values[i], s.Fn(f))
	}
}

func (t *Trace) push(buf []float64, v float64) []float64 {
	buf = append(buf, v)
	if t.Limit > 0 && len(buf) > t.Limit {
		buf = buf[len(buf)-t.Limit:]
	}
	return buf
}

func (t *Trace) Names() []string {
	names := make([]string, len(t.series))
	for i, s := range t.series {
		names[i] = s.Name
	}
	return names
}

func (t *Trace) Times() []float64 { return t.times }

// Values returns the samples of the named series, or nil.
func (t *Trace) Values(name string) []float64 {
	for i, s := range t.series {
		if s.Name == name {
			return t.values[i]
		}
	}
	return nil
}

func (t *Trace) Len() int { return len(t.times) }

func (t *Trace) Reset() {
	t.times = t.times[:0]
	for i := range t.values {
		t.values[i] = t.values[i][:0]
	}
}
