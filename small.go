package nonempty

import (
	"fmt"
	"slices"

	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/nonempty/pkg/smallvec"
)

// SmallVec is a smallvec.SmallVec that always holds at least one element.
// Up to len(A) elements are stored inline; beyond that they spill to the
// heap. It has the same layout as smallvec.SmallVec[T, A].
//
// Views returned by Full, To, From, Range and AsSlice alias the inline
// array while the SmallVec is not spilled: they must not outlive the
// SmallVec they came from, and growing past the inline capacity
// invalidates them. Pass SmallVec by pointer.
type SmallVec[T any, A Array[T]] struct {
	inner smallvec.SmallVec[T, A]
}

// NewSmallVec returns a SmallVec holding only first, stored inline.
func NewSmallVec[T any, A Array[T]](first T) SmallVec[T, A] {
	var v SmallVec[T, A]
	v.inner.Push(first)
	return v
}

// SmallVecWithCapacity returns a SmallVec holding only first with room for
// capacity elements. Capacities above len(A) spill immediately.
func SmallVecWithCapacity[T any, A Array[T]](first T, capacity int) SmallVec[T, A] {
	v := SmallVec[T, A]{inner: smallvec.WithCapacity[T, A](capacity)}
	v.inner.Push(first)
	return v
}

// SmallOf returns a SmallVec of the given elements in order. An empty
// element list does not compile.
func SmallOf[T any, A Array[T]](first T, rest ...T) SmallVec[T, A] {
	v := SmallVecWithCapacity[T, A](first, 1+len(rest))
	v.inner.Extend(rest...)
	return v
}

// SmallFromElem returns a SmallVec of n copies of elem.
func SmallFromElem[T any, A Array[T]](elem T, n NonZero[int]) SmallVec[T, A] {
	v := SmallVecWithCapacity[T, A](elem, n.Get())
	for i := 1; i < n.Get(); i++ {
		v.inner.Push(elem)
	}
	return v
}

// SmallFromBuf returns a SmallVec whose inline array is buf, full to
// capacity. The array length is checked to be non-zero at compile time.
func SmallFromBuf[T any, A Array[T]](buf A) SmallVec[T, A] {
	return SmallVec[T, A]{inner: smallvec.FromBuf[T](buf)}
}

// TryFromSmallVec wraps sv, or returns ErrEmpty if it has no elements.
// Only the SmallVec header moves; elements are not copied.
func TryFromSmallVec[T any, A Array[T]](sv smallvec.SmallVec[T, A]) (SmallVec[T, A], error) {
	if sv.IsEmpty() {
		return SmallVec[T, A]{}, ErrEmpty
	}
	return SmallVec[T, A]{inner: sv}, nil
}

// TryTakeSmallVec moves *sv into a new SmallVec and resets *sv to empty.
// If *sv is empty nothing changes and it reports false.
func TryTakeSmallVec[T any, A Array[T]](sv *smallvec.SmallVec[T, A]) (SmallVec[T, A], bool) {
	if sv.IsEmpty() {
		return SmallVec[T, A]{}, false
	}
	v := SmallVec[T, A]{inner: *sv}
	*sv = smallvec.SmallVec[T, A]{}
	return v, true
}

// SmallFromUnchecked wraps sv without checking its length. The caller
// guarantees sv is not empty.
func SmallFromUnchecked[T any, A Array[T]](sv smallvec.SmallVec[T, A]) SmallVec[T, A] {
	return SmallVec[T, A]{inner: sv}
}

// Inner exposes the wrapped smallvec for reading. Removing its last
// element through this pointer breaks v.
func (v *SmallVec[T, A]) Inner() *smallvec.SmallVec[T, A] {
	return &v.inner
}

// IntoSmallVec hands the wrapped smallvec to the caller. v must not be
// used again.
func (v *SmallVec[T, A]) IntoSmallVec() smallvec.SmallVec[T, A] {
	sv := v.inner
	v.inner = smallvec.SmallVec[T, A]{}
	return sv
}

// IntoSlice moves the elements into a regular slice, reusing the heap
// storage when spilled. v must not be used again.
func (v *SmallVec[T, A]) IntoSlice() []T {
	return v.inner.IntoSlice()
}

// Raw returns the elements as a regular slice without copying.
func (v *SmallVec[T, A]) Raw() []T {
	return v.inner.Slice()
}

// Spilled reports whether the elements have moved to the heap.
func (v *SmallVec[T, A]) Spilled() bool {
	return v.inner.Spilled()
}

// InlineCap is len(A), the number of elements held before spilling.
func (v *SmallVec[T, A]) InlineCap() int {
	return v.inner.InlineCap()
}

// Len is the number of elements, at least one.
func (v *SmallVec[T, A]) Len() NonZero[int] {
	return positive(v.inner.Len())
}

// Cap is the inline capacity until spilled, then the heap capacity.
func (v *SmallVec[T, A]) Cap() NonZero[int] {
	return positive(v.inner.Cap())
}

func (v *SmallVec[T, A]) HasOne() bool {
	return v.inner.Len() == 1
}

// First and Last never fail. At and Set panic out of range like a slice.
func (v *SmallVec[T, A]) First() T       { return v.inner.At(0) }
func (v *SmallVec[T, A]) Last() T        { return v.inner.At(v.inner.Len() - 1) }
func (v *SmallVec[T, A]) FirstPtr() *T   { return &v.inner.Slice()[0] }
func (v *SmallVec[T, A]) LastPtr() *T    { return &v.inner.Slice()[v.inner.Len()-1] }
func (v *SmallVec[T, A]) At(i int) T     { return v.inner.At(i) }
func (v *SmallVec[T, A]) Set(i int, x T) { v.inner.Set(i, x) }

func (v *SmallVec[T, A]) AsSlice() Slice[T] {
	return Slice[T]{s: v.inner.Slice()}.Full()
}

func (v *SmallVec[T, A]) Full() Slice[T]                     { return v.AsSlice() }
func (v *SmallVec[T, A]) To(i int) Slice[T]                  { return v.AsSlice().To(i) }
func (v *SmallVec[T, A]) From(i int) (Slice[T], error)       { return v.AsSlice().From(i) }
func (v *SmallVec[T, A]) Range(lo, hi int) (Slice[T], error) { return v.AsSlice().Range(lo, hi) }

// Clone copies the elements into a new SmallVec.
func (v *SmallVec[T, A]) Clone() SmallVec[T, A] {
	return SmallVec[T, A]{inner: smallvec.FromSlice[T, A](v.inner.Slice())}
}

func (v *SmallVec[T, A]) Push(x T) {
	v.inner.Push(x)
}

// Insert places x at index i, shifting later elements right.
func (v *SmallVec[T, A]) Insert(i int, x T) {
	v.inner.Insert(i, x)
}

// InsertMany places xs at index i in order, spilling once if they do not
// fit inline. It panics if i is out of range.
func (v *SmallVec[T, A]) InsertMany(i int, xs ...T) {
	v.inner.InsertMany(i, xs...)
}

func (v *SmallVec[T, A]) Extend(xs ...T) {
	v.inner.Extend(xs...)
}

// Append moves every element of *other to the end of v and empties *other.
func (v *SmallVec[T, A]) Append(other *[]T) {
	v.inner.Append(other)
}

func (v *SmallVec[T, A]) Reserve(additional int) {
	v.inner.Reserve(additional)
}

// ShrinkToFit drops spare heap capacity, moving the elements back inline
// when they fit.
func (v *SmallVec[T, A]) ShrinkToFit() {
	v.inner.ShrinkToFit()
}

// TryPop removes and returns the last element, or None when v holds a
// single element.
func (v *SmallVec[T, A]) TryPop() optional.Option[T] {
	if shrink("pop", v.inner.Len(), 1) != nil {
		return optional.None[T]()
	}
	x, _ := v.inner.Pop()
	return optional.Some(x)
}

// Remove deletes and returns the element at i. It returns ErrLastElement,
// whatever i is, when v holds a single element.
func (v *SmallVec[T, A]) Remove(i int) (T, error) {
	if err := shrink("remove", v.inner.Len(), 1); err != nil {
		var zero T
		return zero, err
	}
	return v.inner.Remove(i), nil
}

// SwapRemove deletes the element at i, moving the last element into its
// place. Same refusal rule as Remove.
func (v *SmallVec[T, A]) SwapRemove(i int) (T, error) {
	if err := shrink("swap_remove", v.inner.Len(), 1); err != nil {
		var zero T
		return zero, err
	}
	return v.inner.SwapRemove(i), nil
}

// RemoveUnchecked deletes the element at i without the last-element check.
func (v *SmallVec[T, A]) RemoveUnchecked(i int) T {
	return v.inner.Remove(i)
}

// Drain removes the elements in [lo, hi) and returns them. It returns
// ErrLastElement when the range covers every element.
func (v *SmallVec[T, A]) Drain(lo, hi int) ([]T, error) {
	items := v.inner.Slice()
	n := len(items[lo:hi:len(items)])
	if err := shrink("drain", v.inner.Len(), n); err != nil {
		return nil, err
	}
	return v.inner.Drain(lo, hi), nil
}

// Retain keeps the elements for which keep returns true. If keep rejects
// every element it returns ErrLastElement and v is unchanged.
func (v *SmallVec[T, A]) Retain(keep func(T) bool) error {
	items := v.inner.Slice()
	n := compact(items, keep)
	if err := shrink("retain", len(items), len(items)-n); err != nil {
		return err
	}
	v.inner.Truncate(n)
	return nil
}

func (v *SmallVec[T, A]) DedupFunc(eq func(a, b T) bool) {
	v.inner.DedupFunc(eq)
}

// Truncate keeps the first n elements. It does nothing if n >= Len().
func (v *SmallVec[T, A]) Truncate(n NonZero[int]) {
	v.inner.Truncate(n.Get())
}

// Resize grows v to n elements by appending copies of x, or truncates it.
func (v *SmallVec[T, A]) Resize(n NonZero[int], x T) {
	v.ResizeWith(n, func() T { return x })
}

// ResizeWith is like Resize but calls f for each new element.
func (v *SmallVec[T, A]) ResizeWith(n NonZero[int], f func() T) {
	k := n.Get()
	if k <= v.inner.Len() {
		v.inner.Truncate(k)
		return
	}
	v.inner.Reserve(k - v.inner.Len())
	for v.inner.Len() < k {
		v.inner.Push(f())
	}
}

// SplitOff keeps [0, at) in v and returns a copy of the rest. It does not
// move elements back inline; call ShrinkToFit for that.
func (v *SmallVec[T, A]) SplitOff(at NonZero[int]) []T {
	k := at.Get()
	items := v.inner.Slice()
	tail := slices.Clone(items[k:len(items):len(items)])
	v.inner.Truncate(k)
	return tail
}

// DedupSmall collapses runs of equal consecutive elements of v.
func DedupSmall[T comparable, A Array[T]](v *SmallVec[T, A]) {
	v.inner.DedupFunc(func(a, b T) bool { return a == b })
}

// Format implements fmt.Formatter.
func (v *SmallVec[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.inner.Slice())
}

// MarshalYAML implements yaml.Marshaler. It has a value receiver so that
// yaml.v3 finds it on struct fields; the elements are copied out of the
// receiver's inline array.
func (v SmallVec[T, A]) MarshalYAML() (any, error) {
	return slices.Clone(v.inner.Slice()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. An empty sequence is rejected
// with an error wrapping ErrEmpty and v is left unchanged.
func (v *SmallVec[T, A]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("nonempty: yaml sequence at line %d: %w", node.Line, ErrEmpty)
	}
	v.inner = smallvec.FromSlice[T, A](items)
	return nil
}

var (
	_ yaml.Marshaler   = SmallVec[int, [4]int]{}
	_ yaml.Unmarshaler = (*SmallVec[int, [4]int])(nil)
)
