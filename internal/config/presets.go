package config

import (
	"sort"
	"time"
)

// Preset is a named animation tuning.
type Preset struct {
	Description string
	Count       int
	Min, Max    int
	StepDelay   time.Duration
	Pause       time.Duration
}

var Presets = map[string]Preset{
	"classic": {
		Description: "the site's background: 50 bars, 50ms per swap, 2s dwell",
		Count:       50, Min: 10, Max: 90, StepDelay: 50 * time.Millisecond, Pause: 2 * time.Second,
	},
	"calm": {
		Description: "slow swaps and a long dwell",
		Count:       30, Min: 10, Max: 90, StepDelay: 150 * time.Millisecond, Pause: 5 * time.Second,
	},
	"frantic": {
		Description: "as fast as the terminal redraws",
		Count:       50, Min: 10, Max: 90, StepDelay: 5 * time.Millisecond, Pause: 500 * time.Millisecond,
	},
	"dense": {
		Description: "many thin bars",
		Count:       120, Min: 5, Max: 100, StepDelay: 10 * time.Millisecond, Pause: 2 * time.Second,
	},
	"sparse": {
		Description: "a handful of wide bars",
		Count:       12, Min: 10, Max: 90, StepDelay: 300 * time.Millisecond, Pause: 3 * time.Second,
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
