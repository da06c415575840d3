package idxrange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range describes a contiguous block of positions in a sequence, inclusive
// on both ends. Endpoints may be negative, in which case they resolve
// relative to the sequence length during normalization. A zero Step is
// treated as 1.
type Range struct {
	First int
	Last  int
	Step  int
}

// New returns the inclusive range [first, last].
func New(first, last int) Range {
	return Range{First: first, Last: last, Step: 1}
}

// Single returns the one-position range [i, i].
func Single(i int) Range {
	return Range{First: i, Last: i, Step: 1}
}

// WithStep returns a copy of r with the given step. Only steps 1 and -1
// normalize; anything else is rejected by Normalize.
func (r Range) WithStep(step int) Range {
	r.Step = step
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

// Parse parses either a bare index "i" or an inclusive range "first..last".
// Negative endpoints are accepted.
func Parse(s string) (Range, error) {
	h := strings.Index(s, "..")
	if h == -1 {
		i, err := strconv.Atoi(s)
		if err != nil {
			return Range{}, fmt.Errorf("invalid index %q", s)
		}
		return Single(i), nil
	}
	first, last := s[:h], s[h+2:]
	firstInt, err := strconv.Atoi(first)
	if err != nil {
		return Range{}, fmt.Errorf("invalid first index %q in range %q", first, s)
	}
	lastInt, err := strconv.Atoi(last)
	if err != nil {
		return Range{}, fmt.Errorf("invalid last index %q in range %q", last, s)
	}
	return New(firstInt, lastInt), nil
}
