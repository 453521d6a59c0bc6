package sequence

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultCount = 50
	DefaultMin   = 10
	DefaultMax   = 90
)

type Sequence []int

func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// IsSorted reports whether s is non-decreasing end to end.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// IsPermutationOf reports whether s and o hold the same multiset of values.
func (s Sequence) IsPermutationOf(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	counts := make(map[int]int, len(s))
	for _, v := range s {
		counts[v]++
	}
	for _, v := range o {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func (s Sequence) Max() int {
	m := 0
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// Source is the random source the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Generate draws count independent values uniformly from [minValue, maxValue].
func Generate(src Source, count, minValue, maxValue int) (Sequence, error) {
	if err := CheckBounds(count, minValue, maxValue); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}

	span := maxValue - minValue + 1
	seq := make(Sequence, count)
	for i := range seq {
		seq[i] = minValue + src.IntN(span)
	}
	return seq, nil
}

// CheckBounds validates generator arguments without drawing anything.
func CheckBounds(count, minValue, maxValue int) error {
	if count < 0 {
		return fmt.Errorf("%w: count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	if minValue < 1 {
		return fmt.Errorf("%w: min must be positive, got %d", ErrInvalidArgument, minValue)
	}
	if minValue > maxValue {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidArgument, minValue, maxValue)
	}
	return nil
}
