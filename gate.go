package nonempty

import (
	"slices"

	"go.uber.org/zap"

	"github.com/rawbytedev/nonempty/internal/common"
)

// Array is the constraint satisfied by fixed-size arrays of T whose length
// is non-zero. Functions taking an Array reject [0]T at compile time.
// Arrays of lengths outside the set go through the checked constructors
// instead, e.g. TryFromSlice(arr[:]).
type Array[T any] = common.Array[T]

// shrink is the single check every length-decreasing operation goes through
// before it mutates anything: the length left over must stay at least one.
func shrink(op string, length, removed int) error {
	if length-removed >= 1 {
		return nil
	}
	Logger().Debug("refused removal",
		zap.String("op", op),
		zap.Int("len", length),
		zap.Int("removed", removed))
	return ErrLastElement
}

// span selects items[lo:hi] as a view. Bounds past len(items) panic the
// way a slice expression does, even when they fit in the spare capacity; an
// empty selection is ErrEmpty. The view's capacity is clipped so appending
// to its raw slice cannot overwrite the lender's elements.
func span[T any](items []T, lo, hi int) (Slice[T], error) {
	r := slices.Clip(items[lo:hi:len(items)])
	if len(r) == 0 {
		return Slice[T]{}, ErrEmpty
	}
	return Slice[T]{s: r}, nil
}

// compact moves the elements accepted by keep to the front of items, in
// order, and returns how many there are. Nothing is written when keep
// accepts no element.
func compact[T any](items []T, keep func(T) bool) int {
	j := 0
	for i, v := range items {
		if keep(v) {
			if i != j {
				items[j] = v
			}
			j++
		}
	}
	return j
}
