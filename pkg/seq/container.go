package seq

import (
	"github.com/emirpasic/gods/containers"
)

// FromContainer adapts a gods collection into a sequence. The element order
// is the container's own Values() order; for hash-based containers that
// order carries the same caveat as Map.
func FromContainer(c containers.Container) Sequence[any] {
	return containerSeq{c: c}
}

type containerSeq struct {
	c containers.Container
}

func (r containerSeq) Len() int {
	return r.c.Size()
}

func (r containerSeq) Iterate() Iterator[any] {
	return &sliceIterator[any]{current: -1, items: r.c.Values()}
}
