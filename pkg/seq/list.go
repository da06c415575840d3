package seq

// List is a singly linked, forward-only sequence. It does not implement
// Sized: its length is only discoverable by a counting pass, which is the
// trade-off callers accept when they hand one to an operation that must
// resolve negative indices.
type List[E any] struct {
	head *node[E]
	tail *node[E]
}

type node[E any] struct {
	value E
	next  *node[E]
}

func NewList[E any](items ...E) *List[E] {
	r := &List[E]{}
	for _, item := range items {
		r.Push(item)
	}
	return r
}

// Push appends v to the end of the list.
func (r *List[E]) Push(v E) {
	n := &node[E]{value: v}
	if r.tail == nil {
		r.head, r.tail = n, n
		return
	}
	r.tail.next = n
	r.tail = n
}

func (r *List[E]) Iterate() Iterator[E] {
	return &listIterator[E]{next: r.head}
}

// ForwardOnly tags the list as single-pass traversable.
func (r *List[E]) ForwardOnly() {}

type listIterator[E any] struct {
	current *node[E]
	next    *node[E]
}

func (r *listIterator[E]) Next() bool {
	r.current = r.next
	if r.current == nil {
		return false
	}
	r.next = r.current.next
	return true
}

func (r *listIterator[E]) Value() E {
	return r.current.value
}
