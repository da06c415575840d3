package seq

// Iterator walks a single pass over a sequence. The cursor starts before
// the first element; Next advances it and reports whether an element is
// available through Value.
type Iterator[E any] interface {
	Next() bool
	Value() E
}

// Sequence is a finite, ordered collection of elements. Every call to
// Iterate yields a fresh pass from the first element.
type Sequence[E any] interface {
	Iterate() Iterator[E]
}

// Sized is implemented by sequences that know their length without a
// traversal.
type Sized interface {
	Len() int
}

// Indexed is implemented by sequences with random access to arbitrary
// positions.
type Indexed[E any] interface {
	Sequence[E]
	Sized
	At(i int) E
}

// ForwardOnly marks sequences whose elements can only be visited once per
// pass, in order, with no random access.
type ForwardOnly[E any] interface {
	Sequence[E]
	ForwardOnly()
}

// Count returns the number of elements in s. Sized sequences answer without
// a traversal, everything else costs one full pass.
func Count[E any](s Sequence[E]) int {
	if sz, ok := s.(Sized); ok {
		return sz.Len()
	}
	n := 0
	for iter := s.Iterate(); iter.Next(); {
		n++
	}
	return n
}

// Collect materializes one pass over s into a freshly allocated slice.
// The result is never nil.
func Collect[E any](s Sequence[E]) []E {
	var out []E
	if sz, ok := s.(Sized); ok {
		out = make([]E, 0, sz.Len())
	} else {
		out = []E{}
	}
	for iter := s.Iterate(); iter.Next(); {
		out = append(out, iter.Value())
	}
	return out
}
