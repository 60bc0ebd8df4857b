package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/shipwake/internal/dynamo"
)

// Presets adjust the defaults.
var Presets = map[string]func(c *Config){
	"default": func(c *Config) {},
	"calm": func(c *Config) {
		c.Particles.Count = 200
		c.Ship.Enabled = false
	},
	"storm": func(c *Config) {
		c.Particles.BatchVelocity = VelocityRandom
		c.Particles.RandomSpeed = 200
	},
	"dense": func(c *Config) {
		c.Particles.Count = 800
		c.Duration = 5
	},
	"smooth": func(c *Config) {
		c.Field.SmoothCutoff = true
	},
}

// GetPreset returns the defaults with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
