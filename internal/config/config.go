package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/portfolio/internal/sequence"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStepDelay = 50 * time.Millisecond
	DefaultPause     = 2 * time.Second
	DefaultTheme     = "monochrome"
	DefaultLogLevel  = "info"
)

type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Theme     string          `yaml:"theme"`
	Content   string          `yaml:"content,omitempty"`
	Log       LogConfig       `yaml:"log"`
}

type AnimationConfig struct {
	Count     int           `yaml:"count"`
	Min       int           `yaml:"min"`
	Max       int           `yaml:"max"`
	StepDelay time.Duration `yaml:"step_delay"`
	Pause     time.Duration `yaml:"pause"`
	Seed      int64         `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{
			Count:     sequence.DefaultCount,
			Min:       sequence.DefaultMin,
			Max:       sequence.DefaultMax,
			StepDelay: DefaultStepDelay,
			Pause:     DefaultPause,
		},
		Theme: DefaultTheme,
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto decodes the file at path over base, so keys the file leaves out
// keep base's values. base is modified and returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	a := c.Animation
	if err := sequence.CheckBounds(a.Count, a.Min, a.Max); err != nil {
		return err
	}
	if a.StepDelay < 0 || a.Pause < 0 {
		return fmt.Errorf("%w: delays must be non-negative", sequence.ErrInvalidArgument)
	}
	return nil
}

// Apply copies the preset's animation settings over c.
func (c *Config) Apply(p Preset) {
	c.Animation.Count = p.Count
	c.Animation.Min = p.Min
	c.Animation.Max = p.Max
	c.Animation.StepDelay = p.StepDelay
	c.Animation.Pause = p.Pause
}
