package sequence

import "errors"

// ErrInvalidArgument indicates a generator call that violates its contract
// (negative count, non-positive bounds, or inverted bounds).
var ErrInvalidArgument = errors.New("sequence: invalid argument")
