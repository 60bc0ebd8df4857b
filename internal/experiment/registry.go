package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/shipwake/internal/config"
	"github.com/san-kum/shipwake/internal/control"
	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/metrics"
)

// Registry resolves the named pieces a config refers to.
type Registry struct {
	velocities map[string]func(cfg *config.Config) control.VelocityFunc
}

func NewRegistry() *Registry {
	r := &Registry{
		velocities: make(map[string]func(cfg *config.Config) control.VelocityFunc),
	}

	r.velocities[config.VelocityFixed] = func(*config.Config) control.VelocityFunc {
		return control.FixedVelocity(control.DefaultVelocity)
	}
	r.velocities[config.VelocityRandom] = func(cfg *config.Config) control.VelocityFunc {
		return control.RandomVelocity(cfg.Particles.RandomSpeed)
	}

	return r
}

func (r *Registry) GetVelocity(cfg *config.Config) (control.VelocityFunc, error) {
	fn, ok := r.velocities[cfg.Particles.BatchVelocity]
	if !ok {
		return nil, fmt.Errorf("unknown batch velocity: %s", cfg.Particles.BatchVelocity)
	}
	return fn(cfg), nil
}

func (r *Registry) ListVelocities() []string {
	names := make([]string, 0, len(r.velocities))
	for name := range r.velocities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetrics builds the named metrics, or the defaults when names is empty.
func (r *Registry) GetMetrics(names []string) ([]dynamo.Metric, error) {
	if len(names) == 0 {
		return metrics.Defaults(), nil
	}
	out := make([]dynamo.Metric, 0, len(names))
	for _, name := range names {
		m, ok := metrics.New(name)
		if !ok {
			return nil, fmt.Errorf("unknown metric: %s", name)
		}
		out = append(out, m)
	}
	return out, nil
}
