package engine

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/san-kum/portfolio/internal/log"
	"github.com/san-kum/portfolio/internal/sequence"
)

const (
	DefaultStepDelay = 50 * time.Millisecond
	DefaultPause     = 2 * time.Second
)

type Config struct {
	Count     int
	MinValue  int
	MaxValue  int
	StepDelay time.Duration
	Pause     time.Duration

	Clock  clock.Clock
	Source sequence.Source
	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Count:     sequence.DefaultCount,
		MinValue:  sequence.DefaultMin,
		MaxValue:  sequence.DefaultMax,
		StepDelay: DefaultStepDelay,
		Pause:     DefaultPause,
		Clock:     clock.New(),
		Source:    sequence.NewSource(0),
		Logger:    log.WithComponent("engine"),
	}
}

func (c Config) Validate() error {
	if err := sequence.CheckBounds(c.Count, c.MinValue, c.MaxValue); err != nil {
		return err
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: step delay must be non-negative, got %s", sequence.ErrInvalidArgument, c.StepDelay)
	}
	if c.Pause < 0 {
		return fmt.Errorf("%w: pause must be non-negative, got %s", sequence.ErrInvalidArgument, c.Pause)
	}
	return nil
}
