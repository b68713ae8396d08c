package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/starfield/constants"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Sound modes for the fire notification
const (
	SoundBell = "bell"
	SoundTone = "tone"
	SoundOff  = "off"
)

// Config represents the animation configuration
type Config struct {
	// Tick is the fixed scheduling quantum
	Tick time.Duration `yaml:"tick"`

	// Stars is the number of blinking stars placed at setup
	Stars int `yaml:"stars"`

	// Step is the ship displacement per tick of held input
	Step float64 `yaml:"step"`

	// Seed fixes star placement; zero draws a random seed
	Seed uint64 `yaml:"seed,omitempty"`

	// Frames are ship frame files in animation order; empty selects the embedded rocket
	Frames []string `yaml:"frames,omitempty"`

	// Sound selects the fire notifier: bell, tone, off
	Sound string `yaml:"sound"`

	// PlayerFire lets the fire key spawn projectiles from the ship
	PlayerFire bool `yaml:"player_fire"`

	// Color is the base foreground color (hex) shaded per intensity
	Color string `yaml:"color"`

	Projectile ProjectileConfig `yaml:"projectile"`
}

// ProjectileConfig - velocity of spawned shots in cells per tick
type ProjectileConfig struct {
	RowSpeed float64 `yaml:"row_speed"`
	ColSpeed float64 `yaml:"col_speed"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Tick:  constants.TickInterval,
		Stars: constants.StarCount,
		Step:  constants.ShipStep,
		Sound: SoundBell,
		Color: constants.DefaultColor,
		Projectile: ProjectileConfig{
			RowSpeed: constants.ProjectileRowSpeed,
			ColSpeed: constants.ProjectileColSpeed,
		},
	}
}

// Load overlays the YAML file at path on the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"step", c.Step},
		{"projectile.row_speed", c.Projectile.RowSpeed},
		{"projectile.col_speed", c.Projectile.ColSpeed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.key, f.v)
		}
	}

	switch {
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalidConfig, c.Tick)
	case c.Stars < 0:
		return fmt.Errorf("%w: stars must not be negative, got %d", ErrInvalidConfig, c.Stars)
	case c.Step < 0:
		return fmt.Errorf("%w: step must not be negative, got %v", ErrInvalidConfig, c.Step)
	case c.Projectile.RowSpeed == 0 && c.Projectile.ColSpeed == 0:
		return fmt.Errorf("%w: projectile velocity must be non-zero", ErrInvalidConfig)
	case c.Color == "":
		return fmt.Errorf("%w: color must be set", ErrInvalidConfig)
	}

	switch c.Sound {
	case SoundBell, SoundTone, SoundOff:
	default:
		return fmt.Errorf("%w: sound must be one of %s, %s, %s, got %q", ErrInvalidConfig, SoundBell, SoundTone, SoundOff, c.Sound)
	}
	return nil
}

// String renders the effective configuration as YAML
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(out)
}
