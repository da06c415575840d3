// Package rotate moves a contiguous block of elements to another position
// in a sequence, preserving the relative order of the block and of
// everything around it. Every operation returns a freshly built slice and
// leaves its input untouched.
//
// Conceptually each call partitions the input by original position into
// head, back, front and tail chunks and emits them as head, front, back,
// tail. For sequences without a guaranteed enumeration order (seq.Map,
// hash-based containers) the result is only defined relative to the order
// the one consumed pass happens to yield.
package rotate

import (
	"github.com/henderiw/seqrotate/pkg/idxrange"
	"github.com/henderiw/seqrotate/pkg/seq"
)

// Rotate removes the elements selected by rng and reinserts them at the
// insertion point at, expressed in the original sequence's index space.
// With at before the range, the block lands immediately before the element
// originally at at; with at after the range, immediately after it. at equal
// to the range's first position is the identity.
//
// An empty selection (first at or past the end, or a decreasing range)
// returns the input unchanged. A last past the end is clamped. An at inside
// the moved block fails with *idxrange.MoveBlockedError, and a step other
// than 1 or -1 with idxrange.ErrInvalidStep.
func Rotate[E any](s seq.Sequence[E], rng idxrange.Range, at int) ([]E, error) {
	length := seq.Count(s)

	n, err := rng.Normalize(length)
	if err != nil {
		return nil, err
	}
	if n.Empty {
		return seq.Collect(s), nil
	}
	if at < 0 {
		at += length
		if at < 0 {
			at = 0
		}
	}
	if err := n.Validate(at); err != nil {
		return nil, err
	}

	var start, middle, last int
	if at <= n.First {
		start, middle, last = at, n.First, n.Last
	} else {
		start, middle, last = n.First, n.Last+1, at
	}

	if _, ok := s.(seq.ForwardOnly[E]); ok {
		return linear(s.Iterate(), start, middle, last), nil
	}
	return generic(s.Iterate(), start, middle, last), nil
}

// RotateOne moves the single element at idx to the insertion point at.
func RotateOne[E any](s seq.Sequence[E], idx, at int) ([]E, error) {
	return Rotate(s, idxrange.Single(idx), at)
}

// Slide is the classic three-index form: it moves the block [first, last]
// so that it sits at the insertion point at. It is the same operation as
// Rotate addressed by explicit endpoints.
func Slide[E any](s seq.Sequence[E], first, last, at int) ([]E, error) {
	return Rotate(s, idxrange.New(first, last), at)
}

// SlideOne moves the single element at idx to the insertion point at.
func SlideOne[E any](s seq.Sequence[E], idx, at int) ([]E, error) {
	return Slide(s, idx, idx, at)
}
