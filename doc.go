// Package nonempty provides collections that always hold at least one
// element and share their memory layout with the ordinary Go types they
// wrap, so converting between the two never copies.
//
//   - Vec[T] wraps a []T and owns it.
//   - Slice[T] is a view of one or more elements borrowed from a Vec, a
//     SmallVec, an array or a plain slice.
//   - SmallVec[T, A] wraps a smallvec.SmallVec, which keeps up to len(A)
//     elements inline before spilling to the heap.
//
// Adding elements always succeeds. Removing elements goes through a single
// check: an operation that would take away the last element returns
// ErrLastElement (or None, for TryPop) and leaves the collection as it was.
// Because emptiness is ruled out, First and Last return the element
// directly and Len returns a NonZero[int].
//
//	v := nonempty.New(10)
//	v.Reserve(2)
//	v.Push(20)
//	v.Push(30)
//	_ = v.TryPop()
//
//	head := v.To(1)      // [10 20]
//	all := v.Full()      // [10 20]
//	n := all.Len().Get() // 2
//
//	w := nonempty.Of(99, 98, 97)
//	arr := nonempty.FromArray[int]([3]int{1, 2, 3})
//
// Constructors that take an Array reject [0]T at compile time. The
// checked constructors (TryFromSlice, View, TryFromSmallVec) return
// ErrEmpty at run time; the Unchecked variants skip the check and leave
// the caller responsible for it.
//
// Go has no borrow checker: a Slice taken from a Vec or SmallVec is only
// valid until the lender is shrunk or reallocated, and the collections are
// not safe for concurrent use.
package nonempty
