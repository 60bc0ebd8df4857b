package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/shipwake/internal/dynamo"
	"github.com/san-kum/shipwake/internal/integrators"
	"github.com/san-kum/shipwake/internal/physics"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 10.0
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultCount     = 500
	DefaultMargin    = 20.0
	DefaultShipY     = -150.0
	DefaultRandSpeed = 200.0
)

const (
	VelocityFixed  = "fixed"
	VelocityRandom = "random"
)

type Config struct {
	Dt            float64        `yaml:"dt" toml:"dt"`
	Duration      float64        `yaml:"duration" toml:"duration"`
	Seed          int64          `yaml:"seed" toml:"seed"`
	Viewport      ViewportConfig `yaml:"viewport" toml:"viewport"`
	Particles     ParticleConfig `yaml:"particles" toml:"particles"`
	Field         FieldConfig    `yaml:"field" toml:"field"`
	Ship          ShipConfig     `yaml:"ship" toml:"ship"`
	DespawnRadius float64        `yaml:"despawn_radius" toml:"despawn_radius"`
	Metrics       []string       `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
}

// ViewportConfig is the window used by headless runs. A zero size means no
// viewport: no confinement and no pointer actions.
type ViewportConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Scale  float64 `yaml:"scale" toml:"scale"`
}

type ParticleConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Margin float64 `yaml:"margin" toml:"margin"`
	// BatchVelocity is "fixed" (the click-spawn velocity) or "random".
	BatchVelocity string  `yaml:"batch_velocity" toml:"batch_velocity"`
	RandomSpeed   float64 `yaml:"random_speed" toml:"random_speed"`
}

type FieldConfig struct {
	RepelRadius   float64 `yaml:"repel_radius" toml:"repel_radius"`
	RepelStrength float64 `yaml:"repel_strength" toml:"repel_strength"`
	MinDist2      float64 `yaml:"min_dist2" toml:"min_dist2"`
	SmoothCutoff  bool    `yaml:"smooth_cutoff" toml:"smooth_cutoff"`
	Damping       float64 `yaml:"damping" toml:"damping"`
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
}

type ShipConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	X             float64 `yaml:"x" toml:"x"`
	Y             float64 `yaml:"y" toml:"y"`
	Heading       float64 `yaml:"heading" toml:"heading"`
	GridStep      float64 `yaml:"grid_step" toml:"grid_step"`
	Radius        float64 `yaml:"ship_radius" toml:"ship_radius"`
	Strength      float64 `yaml:"ship_strength" toml:"ship_strength"`
	ForwardSpeed  float64 `yaml:"forward_speed" toml:"forward_speed"`
	ReverseSpeed  float64 `yaml:"reverse_speed" toml:"reverse_speed"`
	StrafeSpeed   float64 `yaml:"strafe_speed" toml:"strafe_speed"`
	TurnFrequency float64 `yaml:"turn_frequency" toml:"turn_frequency"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight, Scale: 1},
		Particles: ParticleConfig{
			Count:         DefaultCount,
			Margin:        DefaultMargin,
			BatchVelocity: VelocityFixed,
			RandomSpeed:   DefaultRandSpeed,
		},
		Field: FieldConfig{
			RepelRadius:   300,
			RepelStrength: physics.RepelStrength,
			MinDist2:      physics.MinDist2,
			Damping:       integrators.DefaultDamping,
			MaxSpeed:      integrators.DefaultMaxSpeed,
		},
		Ship: ShipConfig{
			Enabled:       true,
			Y:             DefaultShipY,
			GridStep:      physics.ShipGridStep,
			Radius:        40,
			Strength:      physics.ShipStrength,
			ForwardSpeed:  200,
			ReverseSpeed:  100,
			StrafeSpeed:   200,
			TurnFrequency: 5,
		},
		DespawnRadius: 20,
	}
}

// Load reads a yaml or toml (by extension) file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	if isTOML(path) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate reports the first out-of-range value, wrapping
// dynamo.ErrInvalidConfig.
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Dt > 0, fmt.Sprintf("dt must be positive, got %g", c.Dt)},
		{c.Duration > 0, fmt.Sprintf("duration must be positive, got %g", c.Duration)},
		{c.Viewport.Width >= 0 && c.Viewport.Height >= 0, "viewport size must not be negative"},
		{c.Viewport.Scale > 0, fmt.Sprintf("viewport scale must be positive, got %g", c.Viewport.Scale)},
		{c.Particles.Count >= 0, fmt.Sprintf("particle count must not be negative, got %d", c.Particles.Count)},
		{c.Particles.Margin >= 0, "margin must not be negative"},
		{c.Particles.BatchVelocity == VelocityFixed || c.Particles.BatchVelocity == VelocityRandom,
			fmt.Sprintf("batch_velocity must be %q or %q, got %q", VelocityFixed, VelocityRandom, c.Particles.BatchVelocity)},
		{c.Particles.RandomSpeed >= 0, "random_speed must not be negative"},
		{c.Field.RepelRadius > 0, "repel_radius must be positive"},
		{c.Field.RepelStrength >= 0, "repel_strength must not be negative"},
		{c.Field.MinDist2 > 0, "min_dist2 must be positive"},
		{c.Field.Damping > 0 && c.Field.Damping <= 1, fmt.Sprintf("damping must be in (0, 1], got %g", c.Field.Damping)},
		{c.Field.MaxSpeed > 0, "max_speed must be positive"},
		{c.Ship.GridStep > 0, "grid_step must be positive"},
		{c.Ship.Radius > 0, "ship_radius must be positive"},
		{c.Ship.Strength >= 0, "ship_strength must not be negative"},
		{c.Ship.ForwardSpeed >= 0, "forward_speed must not be negative"},
		{c.Ship.ReverseSpeed >= 0, "reverse_speed must not be negative"},
		{c.Ship.StrafeSpeed >= 0, "strafe_speed must not be negative"},
		{c.Ship.TurnFrequency >= 0, "turn_frequency must not be negative"},
		{c.DespawnRadius >= 0, "despawn_radius must not be negative"},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", dynamo.ErrInvalidConfig, ch.msg)
		}
	}
	return nil
}

func (c *Config) ViewportSize() dynamo.Viewport {
	return dynamo.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

func (c *Config) FieldParams() physics.Params {
	return physics.Params{
		Radius2:      c.Field.RepelRadius * c.Field.RepelRadius,
		Strength:     c.Field.RepelStrength,
		MinDist2:     c.Field.MinDist2,
		SmoothCutoff: c.Field.SmoothCutoff,
	}
}

func (c *Config) ShipParams() physics.ShipParams {
	p := physics.DefaultShipParams()
	p.Radius2 = c.Ship.Radius * c.Ship.Radius
	p.Strength = c.Ship.Strength
	p.Step = c.Ship.GridStep
	p.MinDist2 = c.Field.MinDist2
	return p
}

func (c *Config) Integrator() *integrators.Damped {
	return &integrators.Damped{Damping: c.Field.Damping, MaxSpeed: c.Field.MaxSpeed}
}
