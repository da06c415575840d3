package rotate

import (
	"github.com/henderiw/seqrotate/pkg/seq"
)

// linear rearranges a forward-only pass in exactly one traversal, buffering
// no more than the moved block. Three phases walk the chunk boundaries in
// lockstep: the head is copied through unchanged, the back chunk
// [start, middle) and the front chunk [middle, last] are buffered, then the
// output continues front, back, tail.
//
// The pass exhausting early is not an error: whatever prefix was producible
// is returned. A middle past the end therefore yields the input unchanged,
// and a last past the end simply shortens the front chunk.
func linear[E any](iter seq.Iterator[E], start, middle, last int) []E {
	out := []E{}
	for i := 0; i < start; i++ {
		if !iter.Next() {
			return out
		}
		out = append(out, iter.Value())
	}

	back := make([]E, 0, middle-start)
	for i := start; i < middle; i++ {
		if !iter.Next() {
			return append(out, back...)
		}
		back = append(back, iter.Value())
	}

	front := make([]E, 0, last-middle+1)
	for i := middle; i <= last; i++ {
		if !iter.Next() {
			break
		}
		front = append(front, iter.Value())
	}

	out = append(out, front...)
	out = append(out, back...)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}
