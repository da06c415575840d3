package seq

// Drop returns the elements of s with every element equal to value
// rejected, preserving order.
func Drop[E comparable](s Sequence[E], value E) []E {
	out := []E{}
	for iter := s.Iterate(); iter.Next(); {
		if iter.Value() == value {
			continue
		}
		out = append(out, iter.Value())
	}
	return out
}

// None reports whether no element of s satisfies pred.
func None[E any](s Sequence[E], pred func(E) bool) bool {
	for iter := s.Iterate(); iter.Next(); {
		if pred(iter.Value()) {
			return false
		}
	}
	return true
}
