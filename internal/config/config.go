// Package config holds the demo's tunables.
//
// Values are layered, later sources winning:
//  1. Default()
//  2. a YAML file ($CARD_CONFIG or the -config flag)
//  3. CARD_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/credit-card/internal/card"
	"github.com/iburimskiy/credit-card/internal/interaction"
	"github.com/iburimskiy/credit-card/internal/particle"
)

// Config is the full set of tunables.
type Config struct {
	Window   WindowConfig   `yaml:"window" envPrefix:"WINDOW_"`
	Card     CardConfig     `yaml:"card" envPrefix:"CARD_"`
	Particle ParticleConfig `yaml:"particles" envPrefix:"PARTICLE_"`
	Motion   MotionConfig   `yaml:"motion" envPrefix:"MOTION_"`
	Sound    SoundConfig    `yaml:"sound" envPrefix:"SOUND_"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
	TPS    int    `yaml:"tps" env:"TPS"`
}

type CardConfig struct {
	Width        float64 `yaml:"width" env:"WIDTH"`
	Height       float64 `yaml:"height" env:"HEIGHT"`
	CornerRadius float64 `yaml:"corner_radius" env:"CORNER_RADIUS"`
	StrokeWidth  float64 `yaml:"stroke_width" env:"STROKE_WIDTH"`
	Padding      float64 `yaml:"padding" env:"PADDING"`
	FillStart    string  `yaml:"fill_start" env:"FILL_START"`
	FillEnd      string  `yaml:"fill_end" env:"FILL_END"`
	Background   string  `yaml:"background" env:"BACKGROUND"`
	Title        string  `yaml:"title" env:"TITLE"`
	Number       string  `yaml:"number" env:"NUMBER"`
	Expiry       string  `yaml:"expiry" env:"EXPIRY"`
}

type ParticleConfig struct {
	Cells        int    `yaml:"cells" env:"CELLS"`
	MaxParticles int    `yaml:"max_particles" env:"MAX"`
	OldestFirst  bool   `yaml:"oldest_first" env:"OLDEST_FIRST"`
	Seed         uint64 `yaml:"seed" env:"SEED"`
}

type MotionConfig struct {
	TiltDegrees    float64 `yaml:"tilt_degrees" env:"TILT_DEGREES"`
	SpringResponse float64 `yaml:"spring_response" env:"SPRING_RESPONSE"`
	SpringDamping  float64 `yaml:"spring_damping" env:"SPRING_DAMPING"`
	MinDistance    float64 `yaml:"min_distance" env:"MIN_DISTANCE"`
	MeshSegments   int     `yaml:"mesh_segments" env:"MESH_SEGMENTS"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// Default returns the stock demo configuration.
func Default() *Config {
	motion := interaction.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:  480,
			Height: 800,
			Title:  "Credit Card - drag the card, S: snapshot, Esc/Q: quit",
			TPS:    60,
		},
		Card: CardConfig{
			Width:        360,
			Height:       240,
			CornerRadius: 30,
			StrokeWidth:  2,
			Padding:      card.DefaultPadding,
			FillStart:    "#8E5AF7",
			FillEnd:      "#5D11F7",
			Background:   "#000000",
			Title:        card.DefaultContent.Title,
			Number:       card.DefaultContent.Number,
			Expiry:       card.DefaultContent.Expiry,
		},
		Particle: ParticleConfig{
			Cells:        particle.DefaultCells,
			MaxParticles: 2000,
			OldestFirst:  true,
			Seed:         1,
		},
		Motion: MotionConfig{
			TiltDegrees:    motion.TiltDegrees,
			SpringResponse: motion.Response,
			SpringDamping:  motion.Damping,
			MinDistance:    motion.MinDistance,
			MeshSegments:   12,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.25,
		},
	}
}

// Load layers the file at path (skipped when empty) and the environment over
// the defaults, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CARD_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CARD_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the renderer or the spring cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Card.Width <= 0 || c.Card.Height <= 0:
		return fmt.Errorf("%w: card size %vx%v", ErrInvalid, c.Card.Width, c.Card.Height)
	case c.Card.CornerRadius < 0 || c.Card.StrokeWidth < 0 || c.Card.Padding < 0:
		return fmt.Errorf("%w: negative card geometry", ErrInvalid)
	case c.Particle.Cells <= 0:
		return fmt.Errorf("%w: particle cells %d", ErrInvalid, c.Particle.Cells)
	case c.Particle.MaxParticles < 0:
		return fmt.Errorf("%w: max particles %d", ErrInvalid, c.Particle.MaxParticles)
	case c.Motion.SpringResponse <= 0:
		return fmt.Errorf("%w: spring response %v", ErrInvalid, c.Motion.SpringResponse)
	case c.Motion.SpringDamping <= 0:
		return fmt.Errorf("%w: spring damping %v", ErrInvalid, c.Motion.SpringDamping)
	case c.Motion.MeshSegments < 1 || c.Motion.MeshSegments > 64:
		return fmt.Errorf("%w: mesh segments %d", ErrInvalid, c.Motion.MeshSegments)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound volume %v", ErrInvalid, c.Sound.Volume)
	}
	return nil
}
