package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/sim"
	"github.com/san-kum/shipwake/internal/world"
)

// Experiment wires a config into a ready world and simulator.
type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	simulator *sim.Simulator
}

func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Experiment{cfg: cfg, registry: NewRegistry()}
	s, err := e.Build(cfg.Seed)
	if err != nil {
		return nil, err
	}
	e.simulator = s
	return e, nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// GetSimulator returns the underlying simulator for adding observers.
func (e *Experiment) GetSimulator() *sim.Simulator { return e.simulator }

// Setup translates the config into tick parameters.
func (e *Experiment) Setup() sim.Setup {
	c := e.cfg
	return sim.Setup{
		Field:      c.FieldParams(),
		Ship:       c.ShipParams(),
		Integrator: c.Integrator(),
		Spawner: &control.Spawner{
			Velocity:       control.DefaultVelocity,
			DespawnRadius2: c.DespawnRadius * c.DespawnRadius,
		},
		Pilot: &control.Pilot{
			ForwardSpeed:  c.Ship.ForwardSpeed,
			ReverseSpeed:  c.Ship.ReverseSpeed,
			StrafeSpeed:   c.Ship.StrafeSpeed,
			TurnFrequency: c.Ship.TurnFrequency,
		},
		Margin: c.Particles.Margin,
	}
}

// Build creates an independent simulator whose batch is drawn from seed.
func (e *Experiment) Build(seed int64) (*sim.Simulator, error) {
	w, err := e.Populate(seed)
	if err != nil {
		return nil, err
	}
	s := sim.New(w, e.Setup())
	ms, err := e.registry.GetMetrics(e.cfg.Metrics)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		s.AddMetric(m)
	}
	return s, nil
}

// Populate creates a world holding the startup batch and, if enabled, the
// ship. Without a viewport the batch is skipped.
func (e *Experiment) Populate(seed int64) (*world.World, error) {
	vel, err := e.registry.GetVelocity(e.cfg)
	if err != nil {
		return nil, err
	}
	w := world.New()
	rng := rand.New(rand.NewSource(seed))
	bounds := e.cfg.ViewportSize().Bounds(e.cfg.Particles.Margin)
	control.SeedBatch(w.Particles, e.cfg.Particles.Count, bounds, vel, rng)

	if e.cfg.Ship.Enabled {
		w.SetShip(world.Ship{
			Pos:     dynamo.Vec2{X: e.cfg.Ship.X, Y: e.cfg.Ship.Y},
			Heading: e.cfg.Ship.Heading,
		})
	}
	return w, nil
}

// Reset rebuilds the world from the configured seed, keeping observers.
func (e *Experiment) Reset() error {
	w, err := e.Populate(e.cfg.Seed)
	if err != nil {
		return err
	}
	old := e.simulator
	e.simulator = sim.New(w, old.Setup())
	for _, m := range old.Metrics() {
		m.Reset()
		e.simulator.AddMetric(m)
	}
	for _, o := range old.Observers() {
		e.simulator.AddObserver(o)
	}
	return nil
}

// Input is the headless input of every tick: the configured viewport and no
// buttons or keys.
func (e *Experiment) Input() control.Input {
	return control.Input{
		Viewport: e.cfg.ViewportSize(),
		Scale:    e.cfg.Viewport.Scale,
	}
}

func (e *Experiment) SimConfig() sim.Config {
	return sim.Config{Dt: e.cfg.Dt, Duration: e.cfg.Duration, ValidateState: true}
}

// Run drives the simulator with src, or with the headless input when src is
// nil.
func (e *Experiment) Run(ctx context.Context, src sim.InputSource) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if src == nil {
		src = sim.Constant(e.Input())
	}
	return e.simulator.Run(ctx, e.SimConfig(), src)
}

// Ensemble runs runs seeded copies, starting at the configured seed.
func (e *Experiment) Ensemble(ctx context.Context, runs int, src sim.InputSource) ([]*sim.Result, error) {
	if src == nil {
		src = sim.Constant(e.Input())
	}
	return sim.NewEnsemble(e.Build, runs, e.cfg.Seed).Run(ctx, e.SimConfig(), src)
}
