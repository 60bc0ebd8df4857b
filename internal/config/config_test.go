package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/shipwake/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Particles.Count != 500 {
		t.Errorf("expected 500 particles, got %d", cfg.Particles.Count)
	}
	if p := cfg.FieldParams(); p.Radius2 != 90000 || p.Strength != 1000 {
		t.Errorf("unexpected field params %+v", p)
	}
	if p := cfg.ShipParams(); p.Radius2 != 1600 || p.Strength != 1e5 {
		t.Errorf("unexpected ship params %+v", p)
	}
	if d := cfg.Integrator(); d.Damping != 0.999 || d.MaxSpeed != 100 {
		t.Errorf("unexpected integrator %+v", d)
	}
}

func TestGetPreset(t *testing.T) {
	cfg, err := GetPreset("calm")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if cfg.Particles.Count != 200 || cfg.Ship.Enabled {
		t.Errorf("calm preset not applied: %+v", cfg.Particles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	_, err := GetPreset("nonexistent")
	if !errors.Is(err, dynamo.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		cfg, err := GetPreset(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }},
		{"bad batch velocity", func(c *Config) { c.Particles.BatchVelocity = "sideways" }},
		{"damping above one", func(c *Config) { c.Field.Damping = 1.5 }},
		{"zero max speed", func(c *Config) { c.Field.MaxSpeed = 0 }},
		{"zero min dist", func(c *Config) { c.Field.MinDist2 = 0 }},
		{"negative ship strength", func(c *Config) { c.Ship.Strength = -1 }},
		{"negative forward speed", func(c *Config) { c.Ship.ForwardSpeed = -200 }},
		{"negative reverse speed", func(c *Config) { c.Ship.ReverseSpeed = -1 }},
		{"negative strafe speed", func(c *Config) { c.Ship.StrafeSpeed = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "particles:\n  count: 42\nfield:\n  smooth_cutoff: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Particles.Count != 42 || !cfg.Field.SmoothCutoff {
		t.Errorf("file values not applied: %+v %+v", cfg.Particles, cfg.Field)
	}
	if cfg.Field.Damping != 0.999 {
		t.Errorf("defaults should survive, got damping %f", cfg.Field.Damping)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	data := "seed = 7\n\n[ship]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Seed != 7 || cfg.Ship.Enabled {
		t.Errorf("file values not applied: seed=%d ship=%v", cfg.Seed, cfg.Ship.Enabled)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg"+ext)
			cfg := DefaultConfig()
			cfg.Particles.Count = 123

			if err := Save(path, cfg); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if got.Particles.Count != 123 {
				t.Errorf("expected 123, got %d", got.Particles.Count)
			}
		})
	}
}
