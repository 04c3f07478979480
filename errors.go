package nonempty

import "errors"

var (
	// ErrEmpty is returned when a checked conversion or a range selection
	// would produce a collection with no elements.
	ErrEmpty = errors.New("nonempty: collection is empty")

	// ErrLastElement is returned when a removal would take away the last
	// remaining element. The collection is left unchanged.
	ErrLastElement = errors.New("nonempty: cannot remove the last element")
)
