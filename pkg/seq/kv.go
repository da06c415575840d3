package seq

// Pair is a key-value element of an associative sequence.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map exposes a Go map as a sequence of pairs. Iterate snapshots the pairs
// once per call, in whatever order that single traversal of the map yields.
// Go randomizes map iteration order, so two passes over the same Map may
// present the elements differently; operations on a Map are only defined
// relative to the order of the one pass they consume.
type Map[K comparable, V any] map[K]V

func (r Map[K, V]) Len() int {
	return len(r)
}

func (r Map[K, V]) Iterate() Iterator[Pair[K, V]] {
	pairs := make([]Pair[K, V], 0, len(r))
	for k, v := range r {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return &sliceIterator[Pair[K, V]]{current: -1, items: pairs}
}
