package engine

import "github.com/san-kum/portfolio/internal/sequence"

type State int32

const (
	Idle State = iota
	Sorting
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sorting:
		return "sorting"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Frame is one published snapshot. Sequence is a private copy that the
// engine never touches again.
type Frame struct {
	Cycle    int
	State    State
	Sequence sequence.Sequence
	Swaps    int // swaps so far in this cycle
	Swapped  int // left index of the last swap, -1 when no swap produced the frame
}
