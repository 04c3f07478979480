package nonempty

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NonZero is a strictly positive integer. Lengths and capacities of the
// collections in this package are reported as NonZero[int] so callers do not
// have to re-check for emptiness. The zero value is not valid.
type NonZero[T constraints.Integer] struct {
	n T
}

// NewNonZero returns n as a NonZero, or false if n is not positive.
func NewNonZero[T constraints.Integer](n T) (NonZero[T], bool) {
	if n <= 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{n: n}, true
}

// MustNonZero is like NewNonZero but panics if n is not positive.
func MustNonZero[T constraints.Integer](n T) NonZero[T] {
	nz, ok := NewNonZero(n)
	if !ok {
		panic(fmt.Sprintf("nonempty: %v is not a positive integer", n))
	}
	return nz
}

// Get returns the integer, always greater than zero for a constructed
// NonZero.
func (nz NonZero[T]) Get() T {
	return nz.n
}

func (nz NonZero[T]) String() string {
	return fmt.Sprint(nz.n)
}

// positive wraps a length already known to be at least one.
func positive(n int) NonZero[int] {
	return NonZero[int]{n: n}
}
