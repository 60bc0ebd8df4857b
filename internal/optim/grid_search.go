package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/shipwake/internal/automation"
	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/experiment"
)

// GridSearch runs one headless experiment for every combination of the
// given parameter values and keeps the one with the lowest metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Maximize flips the objective.
	Maximize bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Best is the winning combination.
type Best struct {
	Params map[string]float64
	Value  float64
	Runs   int
}

func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) (*Best, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, fmt.Errorf("got %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}
	probe := *base
	for i, name := range g.paramNames {
		if len(g.ranges[i]) == 0 {
			return nil, fmt.Errorf("parameter %s has no values", name)
		}
		if err := automation.SetParam(&probe, name, g.ranges[i][0]); err != nil {
			return nil, err
		}
	}

	best := &Best{Value: math.Inf(1)}
	if g.Maximize {
		best.Value = math.Inf(-1)
	}
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), base, metricName, best); err != nil {
		return best, err
	}
	if best.Params == nil {
		return best, fmt.Errorf("metric %s not reported by any run", metricName)
	}
	return best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base *config.Config,
	metricName string,
	best *Best,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		cfg := *base
		for name, v := range current {
			if err := automation.SetParam(&cfg, name, v); err != nil {
				return err
			}
		}
		exp, err := experiment.New(&cfg)
		if err != nil {
			// combination outside the valid config space
			return nil
		}

		result, err := exp.Run(ctx, nil)
		if err != nil {
			return err
		}
		best.Runs++

		val, ok := result.Metrics[metricName]
		if !ok {
			return nil
		}
		if g.better(val, best.Value) || best.Params == nil {
			best.Value = val
			best.Params = make(map[string]float64, len(current))
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, base, metricName, best); err != nil {
			return err
		}
	}
	return nil
}

func (g *GridSearch) better(val, cur float64) bool {
	if g.Maximize {
		return val > cur
	}
	return val < cur
}
