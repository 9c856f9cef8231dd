package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CARD_CONFIG", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Card.Title != "Debit Card" || cfg.Card.Width != 360 || cfg.Particle.Cells != 40 {
		t.Errorf("unexpected defaults: %+v", cfg.Card)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yaml")
	data := []byte(`
card:
  title: Credit Card
  fill_start: "#112233"
particles:
  cells: 12
motion:
  tilt_degrees: 20
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CARD_MOTION_TILT_DEGREES", "25")
	t.Setenv("CARD_SOUND_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name      string
		got, want any
	}{
		{"title from file", cfg.Card.Title, "Credit Card"},
		{"fill from file", cfg.Card.FillStart, "#112233"},
		{"untouched default", cfg.Card.FillEnd, "#5D11F7"},
		{"cells from file", cfg.Particle.Cells, 12},
		{"env beats file", cfg.Motion.TiltDegrees, 25.0},
		{"env bool", cfg.Sound.Enabled, false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	if err := os.WriteFile(path, []byte("card:\n  number: \"**** 0001\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CARD_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Card.Number != "**** 0001" {
		t.Errorf("number = %q", cfg.Card.Number)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("card: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad yaml) = nil error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("particles:\n  cells: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(invalid) = %v, want ErrInvalid", err)
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("CARD_CONFIG", "")
	t.Setenv("CARD_WINDOW_WIDTH", "wide")
	if _, err := Load(""); err == nil {
		t.Error("Load with non-numeric width = nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }},
		{"tps", func(c *Config) { c.Window.TPS = -1 }},
		{"card", func(c *Config) { c.Card.Height = 0 }},
		{"radius", func(c *Config) { c.Card.CornerRadius = -1 }},
		{"cells", func(c *Config) { c.Particle.Cells = 0 }},
		{"max", func(c *Config) { c.Particle.MaxParticles = -5 }},
		{"response", func(c *Config) { c.Motion.SpringResponse = 0 }},
		{"damping", func(c *Config) { c.Motion.SpringDamping = 0 }},
		{"segments", func(c *Config) { c.Motion.MeshSegments = 100 }},
		{"volume", func(c *Config) { c.Sound.Volume = 2 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate() = %v, want ErrInvalid", tt.name, err)
		}
	}
}
