package seq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Span is an inclusive integer interval [from, to] exposed as a
// random-access sequence without materializing its elements.
type Span[E constraints.Integer] struct {
	from E
	to   E
}

// SpanFrom returns the sequence from, from+1, ..., to. A span with
// to < from is empty.
func SpanFrom[E constraints.Integer](from, to E) Span[E] {
	return Span[E]{from: from, to: to}
}

// From returns the lower bound of r.
func (r Span[E]) From() E { return r.from }

// To returns the upper bound of r.
func (r Span[E]) To() E { return r.to }

func (r Span[E]) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

func (r Span[E]) Len() int {
	if r.to < r.from {
		return 0
	}
	return int(r.to-r.from) + 1
}

func (r Span[E]) At(i int) E {
	return r.from + E(i)
}

func (r Span[E]) Iterate() Iterator[E] {
	return &spanIterator[E]{current: -1, span: r}
}

type spanIterator[E constraints.Integer] struct {
	current int
	span    Span[E]
}

func (r *spanIterator[E]) Next() bool {
	r.current++
	return r.current < r.span.Len()
}

func (r *spanIterator[E]) Value() E {
	return r.span.At(r.current)
}
