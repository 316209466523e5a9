// Package config resolves runtime settings from defaults, an optional YAML
// file and BASE_TEN_ environment variables
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/base-ten/constants"
	"github.com/lixenwraith/base-ten/engine"
	"github.com/lixenwraith/base-ten/model"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "BASE_TEN_"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration
type Config struct {
	Start         int               `yaml:"start"          env:"START"`
	Mode          string            `yaml:"mode"           env:"MODE"`
	FrameInterval time.Duration     `yaml:"frame_interval" env:"FRAME_INTERVAL"`
	Animation     AnimationConfig   `yaml:"animation"      envPrefix:"ANIM_"`
	Audio         AudioConfig       `yaml:"audio"          envPrefix:"AUDIO_"`
	LogDir        string            `yaml:"log_dir"        env:"LOG_DIR"`
	Debug         bool              `yaml:"debug"          env:"DEBUG"`
	Keys          map[string]string `yaml:"keys"           env:"KEYS"`
}

// AnimationConfig controls transition timing
type AnimationConfig struct {
	Fly     time.Duration `yaml:"fly"     env:"FLY"`
	Flip    time.Duration `yaml:"flip"    env:"FLIP"`
	Settle  time.Duration `yaml:"settle"  env:"SETTLE"`
	Epsilon float64       `yaml:"epsilon" env:"EPSILON"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Muted   bool    `yaml:"muted"   env:"MUTED"`
	Volume  float64 `yaml:"volume"  env:"VOLUME"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Start:         0,
		Mode:          engine.ModeCompose.String(),
		FrameInterval: constants.FrameUpdateInterval,
		Animation: AnimationConfig{
			Fly:     constants.FlyDuration,
			Flip:    constants.FlipDuration,
			Settle:  constants.FlipSettle,
			Epsilon: constants.FlipEpsilon,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		LogDir: "logs",
	}
}

// Load resolves defaults, then the file at path (if any), then the environment
// The start value is clamped to the representable range
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.Start = model.Clamp(cfg.Start)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays a YAML file; keys absent from the file keep their value
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays BASE_TEN_* variables; unset variables keep their value
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid field, each wrapped in ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	if _, err := engine.ParseMode(c.Mode); err != nil {
		errs = append(errs, fmt.Errorf("%w: mode: %w", ErrInvalid, err))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: frame_interval %s must be positive", ErrInvalid, c.FrameInterval))
	}
	for name, d := range map[string]time.Duration{
		"animation.fly":    c.Animation.Fly,
		"animation.flip":   c.Animation.Flip,
		"animation.settle": c.Animation.Settle,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s %s is negative", ErrInvalid, name, d))
		}
	}
	if c.Animation.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("%w: animation.epsilon %v is negative", ErrInvalid, c.Animation.Epsilon))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio.volume %v outside [0,1]", ErrInvalid, c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// Timing converts the animation section for the engine
func (c *Config) Timing() engine.Timing {
	return engine.Timing{
		Fly:     c.Animation.Fly,
		Flip:    c.Animation.Flip,
		Settle:  c.Animation.Settle,
		Epsilon: c.Animation.Epsilon,
	}
}

// StartMode returns the parsed initial mode; Validate guarantees it parses
func (c *Config) StartMode() engine.Mode {
	m, _ := engine.ParseMode(c.Mode)
	return m
}
