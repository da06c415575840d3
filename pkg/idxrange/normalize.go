package idxrange

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned when a range carries a step other than 1 or -1.
var ErrInvalidStep = errors.New("step must be 1 or -1")

// Normalized is the canonical form of a range resolved against a concrete
// sequence length: an ascending inclusive [First, Last] pair with both ends
// inside the sequence, or an empty selection. Every downstream consumer
// works from this single shape.
type Normalized struct {
	First int
	Last  int
	Empty bool
}

// Normalize resolves r against a sequence of the given length.
//
// A step of -1 reinterprets the range as the same block written in
// descending order; the endpoints are swapped before anything else. Any
// other step besides 1 fails with ErrInvalidStep. Negative endpoints
// resolve by adding length. A resolved First at or beyond the end, or a
// First greater than Last, yields an empty selection rather than an error.
// A Last beyond the end is clamped to the final position.
func (r Range) Normalize(length int) (Normalized, error) {
	step := r.Step
	if step == 0 {
		step = 1
	}
	if step != 1 && step != -1 {
		return Normalized{}, fmt.Errorf("%w, got %d for range %s", ErrInvalidStep, step, r)
	}

	first, last := r.First, r.Last
	if step == -1 {
		first, last = last, first
	}
	if first < 0 {
		first += length
	}
	if last < 0 {
		last += length
	}
	if first < 0 || first >= length {
		return Normalized{Empty: true}, nil
	}
	if last >= length {
		last = length - 1
	}
	if first > last {
		return Normalized{Empty: true}, nil
	}
	return Normalized{First: first, Last: last}, nil
}
