package automation

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/experiment"
)

// Sweepable config values, by name.
var sweepParams = map[string]func(c *config.Config, v float64){
	"repel_strength": func(c *config.Config, v float64) { c.Field.RepelStrength = v },
	"repel_radius":   func(c *config.Config, v float64) { c.Field.RepelRadius = v },
	"damping":        func(c *config.Config, v float64) { c.Field.Damping = v },
	"max_speed":      func(c *config.Config, v float64) { c.Field.MaxSpeed = v },
	"ship_strength":  func(c *config.Config, v float64) { c.Ship.Strength = v },
	"count":          func(c *config.Config, v float64) { c.Particles.Count = int(v) },
}

func SweepParams() []string {
	names := make([]string, 0, len(sweepParams))
	for name := range sweepParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParameterSweep runs one headless experiment per value of a config
// parameter, evenly spaced over [ParamMin, ParamMax].
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	// Progress receives one line per finished step when set.
	Progress io.Writer
}

type SweepResult struct {
	ParamValue float64
	Metrics    map[string]float64
	Errors     int
}

// SetParam assigns a sweepable parameter on c.
func SetParam(c *config.Config, name string, v float64) error {
	set, ok := sweepParams[name]
	if !ok {
		return fmt.Errorf("parameter %s is not sweepable", name)
	}
	set(c, v)
	return nil
}

func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	set, ok := sweepParams[sweep.ParamName]
	if !ok {
		return nil, fmt.Errorf("parameter %s is not sweepable", sweep.ParamName)
	}
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step")
	}
	base := sweep.Base
	if base == nil {
		base = config.DefaultConfig()
	}

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep
		cfg := *base
		set(&cfg, paramVal)

		exp, err := experiment.New(&cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		result, err := exp.Run(ctx, nil)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Metrics:    result.Metrics,
			Errors:     len(result.Errors),
		})

		if sweep.Progress != nil {
			fmt.Fprintf(sweep.Progress, "Sweep %d/%d: %s=%.4f\n", i+1, sweep.NumSteps, sweep.ParamName, paramVal)
		}
	}

	return results, nil
}
