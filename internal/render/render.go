// Package render maps sequence snapshots to drawable bars. It holds no
// state; every call derives its output from the snapshot alone.
package render

import "github.com/san-kum/portfolio/internal/sequence"

type Bar struct {
	Value   int
	Height  float64 // percent of the drawing area
	Opacity float64 // 0.5 for a zero magnitude up to 1.0 at 100
}

// Opacity brightens taller bars: 0.5 + (v/100)*0.5.
func Opacity(v int) float64 {
	return 0.5 + (float64(v)/100)*0.5
}

func Bars(seq sequence.Sequence) []Bar {
	bars := make([]Bar, len(seq))
	for i, v := range seq {
		bars[i] = Bar{Value: v, Height: float64(v), Opacity: Opacity(v)}
	}
	return bars
}
