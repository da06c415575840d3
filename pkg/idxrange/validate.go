package idxrange

import (
	"fmt"
)

// MoveBlockedError reports an insertion point that falls inside the block
// being moved. This is a contract violation by the caller, not a data
// error: the block cannot be reinserted relative to one of its own
// positions.
type MoveBlockedError struct {
	First  int
	Last   int
	Insert int
}

func (e *MoveBlockedError) Error() string {
	return fmt.Sprintf("insertion point %d lies inside the moved range %d-%d", e.Insert, e.First, e.Last)
}

// Validate checks that the insertion point at is compatible with the
// normalized range. An empty selection is always valid (it never moves
// anything). at equal to First is valid and is the documented identity
// operation. Anything strictly inside the block, including its final
// position, is blocked.
func (r Normalized) Validate(at int) error {
	if r.Empty || at == r.First {
		return nil
	}
	if at > r.First && at <= r.Last {
		return &MoveBlockedError{First: r.First, Last: r.Last, Insert: at}
	}
	return nil
}
