// Package metrics observes engine frames and reduces them to numbers for
// the status line and the plot command.
package metrics

import (
	"github.com/san-kum/portfolio/internal/bubble"
	"github.com/san-kum/portfolio/internal/engine"
)

type Metric interface {
	Name() string
	Observe(f engine.Frame)
	Value() float64
	Reset()
}

// Order is the fraction of adjacent pairs already in order in the latest
// frame. Sequences shorter than two are fully ordered.
type Order struct {
	name    string
	ordered int
	pairs   int
}

func NewOrder() *Order { return &Order{name: "order"} }

func (o *Order) Name() string { return o.name }

func (o *Order) Observe(f engine.Frame) {
	o.ordered, o.pairs = 0, 0
	for i := 1; i < len(f.Sequence); i++ {
		o.pairs++
		if f.Sequence[i-1] <= f.Sequence[i] {
			o.ordered++
		}
	}
}

func (o *Order) Value() float64 {
	if o.pairs == 0 {
		return 1.0
	}
	return float64(o.ordered) / float64(o.pairs)
}

func (o *Order) Reset() {
	o.ordered = 0
	o.pairs = 0
}

// Remaining is the number of swaps still needed to sort the latest frame.
type Remaining struct {
	name string
	left int
}

func NewRemaining() *Remaining { return &Remaining{name: "remaining"} }

func (r *Remaining) Name() string { return r.name }

func (r *Remaining) Observe(f engine.Frame) {
	r.left = bubble.CountSwaps(f.Sequence)
}

func (r *Remaining) Value() float64 { return float64(r.left) }

func (r *Remaining) Reset() { r.left = 0 }

// SwapsPerCycle averages the swap totals of completed cycles. Only paused
// frames, which close a cycle, are counted.
type SwapsPerCycle struct {
	name   string
	total  int
	cycles int
	peak   int
}

func NewSwapsPerCycle() *SwapsPerCycle { return &SwapsPerCycle{name: "swaps_per_cycle"} }

func (s *SwapsPerCycle) Name() string { return s.name }

func (s *SwapsPerCycle) Observe(f engine.Frame) {
	if f.State != engine.Paused {
		return
	}
	s.total += f.Swaps
	s.cycles++
	s.peak = max(s.peak, f.Swaps)
}

func (s *SwapsPerCycle) Value() float64 {
	if s.cycles == 0 {
		return 0
	}
	return float64(s.total) / float64(s.cycles)
}

func (s *SwapsPerCycle) Cycles() int { return s.cycles }

func (s *SwapsPerCycle) Peak() int { return s.peak }

func (s *SwapsPerCycle) Reset() {
	s.total = 0
	s.cycles = 0
	s.peak = 0
}

// Set feeds every frame to each metric.
type Set []Metric

func (s Set) Observe(f engine.Frame) {
	for _, m := range s {
		m.Observe(f)
	}
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}

// Values returns each metric's value keyed by name.
func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}
