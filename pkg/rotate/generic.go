package rotate

import (
	"github.com/henderiw/seqrotate/pkg/seq"
)

// generic is the fallback for any iterable. One pass classifies each
// element, keyed by its position in that pass, into the accumulator that
// precedes the pivot (head and front chunks) or the one that follows it
// (back and tail chunks); the result is their concatenation.
func generic[E any](iter seq.Iterator[E], start, middle, last int) []E {
	pre := []E{}
	post := []E{}
	for i := 0; iter.Next(); i++ {
		v := iter.Value()
		switch {
		case i < start:
			pre = append(pre, v)
		case i < middle:
			post = append(post, v)
		case i <= last:
			pre = append(pre, v)
		default:
			post = append(post, v)
		}
	}
	return append(pre, post...)
}
