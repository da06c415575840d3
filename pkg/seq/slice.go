package seq

// Slice is a random-access sequence backed by a plain slice.
type Slice[E any] []E

// FromSlice wraps items without copying.
func FromSlice[E any](items []E) Slice[E] {
	return Slice[E](items)
}

func (r Slice[E]) Iterate() Iterator[E] {
	return &sliceIterator[E]{current: -1, items: r}
}

func (r Slice[E]) Len() int {
	return len(r)
}

func (r Slice[E]) At(i int) E {
	return r[i]
}

type sliceIterator[E any] struct {
	current int
	items   []E
}

func (r *sliceIterator[E]) Next() bool {
	r.current++
	return r.current < len(r.items)
}

func (r *sliceIterator[E]) Value() E {
	return r.items[r.current]
}
