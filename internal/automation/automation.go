package automation

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/experiment"
	"github.com/san-kum/shipwake/internal/sim"
)

// Event kinds.
const (
	KindSpawn   = "spawn"   // primary click at x,y
	KindDespawn = "despawn" // secondary click at x,y
	KindMove    = "move"    // pointer to x,y
	KindKeys    = "keys"    // replace the held key set
	KindRelease = "release" // release all keys
	KindAim     = "aim"     // secondary press at x,y, held until Until
)

// Scenario is a scripted input sequence. Coordinates are device
// coordinates of the scenario viewport.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Preset      string   `yaml:"preset"`
	Viewport    Viewport `yaml:"viewport"`
	Dt          float64  `yaml:"dt"`
	Ticks       int      `yaml:"ticks"`
	Events      []Event  `yaml:"events"`
}

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Event struct {
	Tick  int      `yaml:"tick"`
	Kind  string   `yaml:"kind"`
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Keys  []string `yaml:"keys"`
	Until int      `yaml:"until"`
}

// LoadScenario loads a scenario from a YAML file, filling dt and viewport
// from the defaults when absent.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := scenario.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &scenario, nil
}

func (s *Scenario) normalize() error {
	if s.Dt == 0 {
		s.Dt = config.DefaultDt
	}
	if s.Viewport.Width == 0 && s.Viewport.Height == 0 {
		s.Viewport = Viewport{Width: config.DefaultWidth, Height: config.DefaultHeight}
	}
	if s.Ticks == 0 {
		for _, e := range s.Events {
			s.Ticks = max(s.Ticks, e.Tick+1, e.Until+1)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Tick < s.Events[j].Tick })
	return s.Validate()
}

func (s *Scenario) Validate() error {
	if s.Dt <= 0 {
		return fmt.Errorf("%w: scenario dt must be positive", dynamo.ErrInvalidConfig)
	}
	if s.Ticks <= 0 {
		return fmt.Errorf("%w: scenario needs at least one tick", dynamo.ErrInvalidConfig)
	}
	for i, e := range s.Events {
		if e.Tick < 0 {
			return fmt.Errorf("%w: event %d: negative tick", dynamo.ErrInvalidConfig, i)
		}
		switch e.Kind {
		case KindSpawn, KindDespawn, KindMove, KindRelease:
		case KindAim:
			if e.Until != 0 && e.Until < e.Tick {
				return fmt.Errorf("%w: event %d: aim ends before it starts", dynamo.ErrInvalidConfig, i)
			}
		case KindKeys:
			if _, err := parseKeys(e.Keys); err != nil {
				return fmt.Errorf("%w: event %d: %v", dynamo.ErrInvalidConfig, i, err)
			}
		default:
			return fmt.Errorf("%w: event %d: unknown kind %q", dynamo.ErrInvalidConfig, i, e.Kind)
		}
	}
	return nil
}

func parseKeys(names []string) (control.Keys, error) {
	var k control.Keys
	for _, n := range names {
		switch n {
		case "forward", "w":
			k.Forward = true
		case "back", "s":
			k.Back = true
		case "left", "a":
			k.Left = true
		case "right", "d":
			k.Right = true
		default:
			return k, fmt.Errorf("unknown key %q", n)
		}
	}
	return k, nil
}

// Input returns the input of tick. Clicks are pressed and held only on
// their own tick; an aim is pressed on its first tick and held through
// Until (or to the end when Until is zero). Input only reads the scenario,
// so one scenario can feed several runs at once.
func (s *Scenario) Input(tick int, dt float64) control.Input {
	in := control.Input{
		Dt:       dt,
		Viewport: dynamo.Viewport{Width: s.Viewport.Width, Height: s.Viewport.Height},
		Scale:    1,
		Aim:      true,
	}

	for _, e := range s.Events {
		if e.Tick > tick {
			break
		}
		switch e.Kind {
		case KindSpawn:
			in.Pointer = dynamo.Vec2{X: e.X, Y: e.Y}
			if e.Tick == tick {
				in.Primary = control.Button{Pressed: true, Held: true}
			}
		case KindDespawn:
			in.Pointer = dynamo.Vec2{X: e.X, Y: e.Y}
			if e.Tick == tick {
				in.Secondary = control.Button{Pressed: true, Held: true}
			}
		case KindMove:
			in.Pointer = dynamo.Vec2{X: e.X, Y: e.Y}
		case KindKeys:
			in.Keys, _ = parseKeys(e.Keys)
		case KindRelease:
			in.Keys = control.Keys{}
		case KindAim:
			if e.Until != 0 && tick > e.Until {
				continue
			}
			in.Pointer = dynamo.Vec2{X: e.X, Y: e.Y}
			in.Secondary.Held = true
			in.Secondary.Pressed = in.Secondary.Pressed || e.Tick == tick
		}
	}
	return in
}

func (s *Scenario) SimConfig() sim.Config {
	return sim.Config{Dt: s.Dt, Duration: float64(s.Ticks) * s.Dt, ValidateState: true}
}

// Run plays the scenario on an existing simulator.
func Run(ctx context.Context, s *sim.Simulator, scenario *Scenario) (*sim.Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return s.Run(ctx, scenario.SimConfig(), scenario)
}

// RunScenario builds a fresh experiment from base (or the scenario preset
// when base is nil) with the scenario's viewport, then plays it.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config) (*sim.Result, error) {
	cfg := base
	if cfg == nil {
		name := scenario.Preset
		if name == "" {
			name = "default"
		}
		var err error
		if cfg, err = config.GetPreset(name); err != nil {
			return nil, err
		}
	}
	c := *cfg
	c.Viewport.Width, c.Viewport.Height = scenario.Viewport.Width, scenario.Viewport.Height
	c.Viewport.Scale = 1

	exp, err := experiment.New(&c)
	if err != nil {
		return nil, fmt.Errorf("scenario %s setup: %w", scenario.Name, err)
	}
	return Run(ctx, exp.GetSimulator(), scenario)
}

// RunEnsemble plays the scenario on runs seeded copies of exp. The copies
// use the scenario's dt and tick count, not the experiment's.
func RunEnsemble(ctx context.Context, exp *experiment.Experiment, scenario *Scenario, runs int) ([]*sim.Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return sim.NewEnsemble(exp.Build, runs, exp.Config().Seed).Run(ctx, scenario.SimConfig(), scenario)
}
