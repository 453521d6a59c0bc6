// Package bubble drives a bubble sort one swap at a time.
package bubble

import (
	"iter"

	"github.com/san-kum/portfolio/internal/sequence"
)

// Step is the state of the sort right after one adjacent swap.
type Step struct {
	Pass     int
	Index    int // positions Index and Index+1 were exchanged
	Swaps    int
	Snapshot sequence.Sequence
}

// Steps returns the swap trace of an ascending bubble sort over seq.
// The input is never mutated and each range over the result starts again
// from the original input. Equal neighbours are never swapped.
func Steps(seq sequence.Sequence) iter.Seq[Step] {
	input := seq.Clone()
	return func(yield func(Step) bool) {
		arr := input.Clone()
		n := len(arr)
		swaps := 0
		for i := 0; i < n-1; i++ {
			for j := 0; j < n-i-1; j++ {
				if arr[j] <= arr[j+1] {
					continue
				}
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swaps++
				if !yield(Step{Pass: i, Index: j, Swaps: swaps, Snapshot: arr.Clone()}) {
					return
				}
			}
		}
	}
}

// Sort runs the whole trace and returns the sorted copy with its swap count.
func Sort(seq sequence.Sequence) (sequence.Sequence, int) {
	out := seq.Clone()
	swaps := 0
	for step := range Steps(seq) {
		out = step.Snapshot
		swaps = step.Swaps
	}
	return out, swaps
}

// CountSwaps is the number of swaps the trace performs, which equals the
// number of inversions in seq.
func CountSwaps(seq sequence.Sequence) int {
	inv := 0
	for i := range seq {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inv++
			}
		}
	}
	return inv
}
