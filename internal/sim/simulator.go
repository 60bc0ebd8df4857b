package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/integrators"
	"github.com/san-kum/shipwake/internal/physics"
	"github.com/san-kum/shipwake/internal/world"
)

// DefaultMargin insets the confinement box from the viewport edge.
const DefaultMargin = 20.0

// Setup holds the tunables of every tick phase.
type Setup struct {
	Field      physics.Params
	Ship       physics.ShipParams
	Integrator *integrators.Damped
	Spawner    *control.Spawner
	Pilot      *control.Pilot
	Margin     float64
}

func DefaultSetup() Setup {
	return Setup{
		Field:      physics.DefaultParams(),
		Ship:       physics.DefaultShipParams(),
		Integrator: integrators.NewDamped(),
		Spawner:    control.NewSpawner(),
		Pilot:      control.NewPilot(),
		Margin:     DefaultMargin,
	}
}

// Simulator advances a world one tick at a time. It is not safe for
// concurrent use; hosts drive it from a single loop.
type Simulator struct {
	world     *world.World
	setup     Setup
	metrics   []dynamo.Metric
	observers []dynamo.Observer

	tick   int
	time   float64
	frame  dynamo.Frame
	report control.Report

	// per-tick delta buffers, slot aligned with the store
	field []dynamo.Vec2
	hull  []dynamo.Vec2
}

func New(w *world.World, setup Setup) *Simulator {
	return &Simulator{
		world:     w,
		setup:     setup,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) World() *world.World          { return s.world }
func (s *Simulator) Setup() Setup                 { return s.setup }
func (s *Simulator) Metrics() []dynamo.Metric     { return s.metrics }
func (s *Simulator) Observers() []dynamo.Observer { return s.observers }
func (s *Simulator) Ticks() int                   { return s.tick }
func (s *Simulator) Time() float64                { return s.time }

// Frame is the state after the last tick. Its slices alias the store.
func (s *Simulator) Frame() *dynamo.Frame { return &s.frame }

// LastReport lists the spawns and removals of the last tick.
func (s *Simulator) LastReport() control.Report { return s.report }

// Tick runs one frame:
//
//  1. input: despawn/spawn on press edges, then ship steering
//  2. pairwise repulsion and confinement deltas from one position snapshot
//  3. velocity update: add deltas, damp, clamp
//  4. hull deltas from the same snapshot, added and re-clamped
//  5. positions advance by the final velocities
//
// A missing viewport skips confinement and pointer actions; a missing ship
// skips steering and the hull field.
func (s *Simulator) Tick(in control.Input) {
	st := s.world.Particles
	s.report = s.setup.Spawner.Apply(st, in)

	ship, hasShip := s.world.Ship()
	if hasShip {
		s.setup.Pilot.Steer(ship, in)
	}

	n := st.Len()
	s.field = resize(s.field, n)
	pos, vel := st.Positions(), st.Velocities()
	snap := physics.NewSnapshot(pos)
	bounds := in.Viewport.Bounds(s.setup.Margin)

	physics.AccumulatePairwise(snap, in.Dt, s.setup.Field, s.field)
	physics.AccumulateConfinement(snap, bounds, in.Dt, s.field)
	s.setup.Integrator.Apply(vel, s.field)

	if hasShip {
		s.hull = resize(s.hull, n)
		physics.NewShipField(*ship, s.setup.Ship).Accumulate(snap, in.Dt, s.hull)
		s.setup.Integrator.Kick(vel, s.hull)
	}

	integrators.Advance(pos, vel, in.Dt)

	s.tick++
	s.time += in.Dt
	s.frame = dynamo.Frame{
		Tick:       s.tick,
		Time:       s.time,
		Dt:         in.Dt,
		Positions:  pos,
		Velocities: vel,
		Bounds:     bounds,
		MaxSpeed:   s.setup.Integrator.MaxSpeed,
	}
	for _, m := range s.metrics {
		m.Observe(&s.frame)
	}
	for _, o := range s.observers {
		o.OnTick(&s.frame)
	}
}

// Reset zeroes the clock and metrics. The world is left as is.
func (s *Simulator) Reset() {
	s.tick = 0
	s.time = 0
	s.frame = dynamo.Frame{}
	s.report = control.Report{}
	for _, m := range s.metrics {
		m.Reset()
	}
}

// resize returns a zeroed buffer of length n, reusing buf when it is large
// enough.
func resize(buf []dynamo.Vec2, n int) []dynamo.Vec2 {
	if cap(buf) < n {
		return make([]dynamo.Vec2, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// InputSource supplies the input of each tick to a headless run.
type InputSource interface {
	Input(tick int, dt float64) control.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func(tick int, dt float64) control.Input

func (f InputFunc) Input(tick int, dt float64) control.Input { return f(tick, dt) }

// Constant feeds the same input every tick, with Dt filled in.
func Constant(in control.Input) InputSource {
	return InputFunc(func(_ int, dt float64) control.Input {
		out := in
		out.Dt = dt
		return out
	})
}

type Config struct {
	Dt       float64
	Duration float64
	// ValidateState stops the run at the first NaN/Inf position.
	ValidateState bool
}

type Result struct {
	Ticks     int
	Time      float64
	Particles int
	Metrics   map[string]float64
	Errors    []error
}

// Run drives the simulator for cfg.Duration. The context is checked between
// ticks only; a canceled run returns the partial result.
func (s *Simulator) Run(ctx context.Context, cfg Config, src InputSource) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if src == nil {
		src = Constant(control.Input{})
	}

	steps := int(cfg.Duration/cfg.Dt + 1e-9)
	result := &Result{
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		s.Tick(src.Input(i, cfg.Dt))

		if cfg.ValidateState {
			if err := validateFrame(&s.frame); err != nil {
				result.Errors = append(result.Errors, &dynamo.SimulationError{
					Tick:    s.tick,
					Time:    s.time,
					Wrapped: err,
				})
				break
			}
		}
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) collect(r *Result) {
	r.Ticks = s.tick
	r.Time = s.time
	r.Particles = s.world.Particles.Len()
	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Duration)
	}
	return nil
}

func validateFrame(f *dynamo.Frame) error {
	for i := range f.Positions {
		if !f.Positions[i].IsValid() || !f.Velocities[i].IsValid() {
			return fmt.Errorf("%w: slot %d", dynamo.ErrInvalidState, i)
		}
	}
	return nil
}
