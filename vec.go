package nonempty

import (
	"fmt"
	"slices"

	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/nonempty/internal/common"
)

// Vec is a growable sequence that always holds at least one element.
//
// Its only field is the backing []T, so converting to and from a regular
// slice never copies. Operations that add elements always succeed;
// operations that remove elements refuse, leaving the Vec untouched, when
// they would remove the last one.
//
// The zero value is not a valid Vec: build one with New, Of, FromArray or
// TryFromSlice. A Vec is not safe for concurrent use.
type Vec[T any] struct {
	s []T
}

// New returns a Vec holding only first.
func New[T any](first T) Vec[T] {
	return Vec[T]{s: []T{first}}
}

// WithCapacity returns a Vec holding only first, with room for capacity
// elements (at least one).
func WithCapacity[T any](first T, capacity int) Vec[T] {
	s := make([]T, 1, max(capacity, 1))
	s[0] = first
	return Vec[T]{s: s}
}

// Of returns a Vec of the given elements in order. At least one element is
// required by the signature, so an empty literal does not compile.
func Of[T any](first T, rest ...T) Vec[T] {
	s := make([]T, 0, 1+len(rest))
	s = append(s, first)
	return Vec[T]{s: append(s, rest...)}
}

// FromElem returns a Vec of n copies of elem.
func FromElem[T any](elem T, n NonZero[int]) Vec[T] {
	s := make([]T, n.Get())
	for i := range s {
		s[i] = elem
	}
	return Vec[T]{s: s}
}

// FromArray copies arr into a new Vec. The array length is checked to be
// non-zero at compile time, so this cannot fail.
func FromArray[T any, A Array[T]](arr A) Vec[T] {
	return Vec[T]{s: slices.Clone(common.ArraySlice[T](&arr))}
}

// TryFromSlice adopts s as the backing storage of a Vec, without copying.
// It returns ErrEmpty if s has no elements. The caller gives up s.
func TryFromSlice[T any](s []T) (Vec[T], error) {
	if len(s) == 0 {
		return Vec[T]{}, ErrEmpty
	}
	return Vec[T]{s: s}, nil
}

// TryTake moves *s into a new Vec and sets *s to nil. If *s is empty
// nothing changes and it reports false.
func TryTake[T any](s *[]T) (Vec[T], bool) {
	if len(*s) == 0 {
		return Vec[T]{}, false
	}
	v := Vec[T]{s: *s}
	*s = nil
	return v, true
}

// FromSliceUnchecked adopts s without checking its length. The caller
// guarantees len(s) > 0.
func FromSliceUnchecked[T any](s []T) Vec[T] {
	return Vec[T]{s: s}
}

// Raw returns the backing slice. Writes to its elements are visible in v.
// Do not use it to build another Vec after reslicing it to zero length.
func (v Vec[T]) Raw() []T {
	return v.s
}

// IntoRaw hands the backing slice to the caller. v is left as the zero
// value and must not be used again.
func (v *Vec[T]) IntoRaw() []T {
	s := v.s
	v.s = nil
	return s
}

// Len is the number of elements, at least one.
func (v Vec[T]) Len() NonZero[int] {
	return positive(len(v.s))
}

// Cap is the capacity of the backing slice.
func (v Vec[T]) Cap() NonZero[int] {
	return positive(cap(v.s))
}

// HasOne reports whether v holds exactly one element.
func (v Vec[T]) HasOne() bool {
	return len(v.s) == 1
}

// First and Last never fail. At and Set panic out of range like a slice.
func (v Vec[T]) First() T       { return v.s[0] }
func (v Vec[T]) Last() T        { return v.s[len(v.s)-1] }
func (v Vec[T]) FirstPtr() *T   { return &v.s[0] }
func (v Vec[T]) LastPtr() *T    { return &v.s[len(v.s)-1] }
func (v Vec[T]) At(i int) T     { return v.s[i] }
func (v Vec[T]) Set(i int, x T) { v.s[i] = x }

// AsSlice views every element of v.
func (v Vec[T]) AsSlice() Slice[T] {
	return Slice[T]{s: v.s}.Full()
}

func (v Vec[T]) Full() Slice[T]                     { return v.AsSlice() }
func (v Vec[T]) To(i int) Slice[T]                  { return v.AsSlice().To(i) }
func (v Vec[T]) From(i int) (Slice[T], error)       { return span(v.s, i, len(v.s)) }
func (v Vec[T]) Range(lo, hi int) (Slice[T], error) { return span(v.s, lo, hi) }

// Clone returns a Vec with its own copy of the elements.
func (v Vec[T]) Clone() Vec[T] {
	return Vec[T]{s: slices.Clone(v.s)}
}

func (v *Vec[T]) Push(x T) {
	v.s = append(v.s, x)
}

// Insert places x at index i, shifting later elements right.
// It panics if i is out of range.
func (v *Vec[T]) Insert(i int, x T) {
	v.s = slices.Insert(v.s, i, x)
}

func (v *Vec[T]) Extend(xs ...T) {
	v.s = append(v.s, xs...)
}

// Append moves every element of *other to the end of v and empties *other.
func (v *Vec[T]) Append(other *[]T) {
	v.s = append(v.s, *other...)
	clear(*other)
	*other = (*other)[:0]
}

func (v *Vec[T]) Reserve(additional int) {
	v.s = slices.Grow(v.s, additional)
}

func (v *Vec[T]) ShrinkToFit() {
	if cap(v.s) > len(v.s) {
		v.s = append(make([]T, 0, len(v.s)), v.s...)
	}
}

// TryPop removes and returns the last element. When v holds a single
// element it returns None and leaves v unchanged.
func (v *Vec[T]) TryPop() optional.Option[T] {
	if shrink("pop", len(v.s), 1) != nil {
		return optional.None[T]()
	}
	last := v.s[len(v.s)-1]
	var zero T
	v.s[len(v.s)-1] = zero
	v.s = v.s[:len(v.s)-1]
	return optional.Some(last)
}

// Remove deletes and returns the element at i, shifting later elements
// left. It returns ErrLastElement, whatever i is, when v holds a single
// element.
func (v *Vec[T]) Remove(i int) (T, error) {
	var zero T
	if err := shrink("remove", len(v.s), 1); err != nil {
		return zero, err
	}
	x := v.s[i]
	v.s = slices.Delete(v.s, i, i+1)
	return x, nil
}

// SwapRemove deletes and returns the element at i, moving the last element
// into its place. Same refusal rule as Remove.
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if err := shrink("swap_remove", len(v.s), 1); err != nil {
		return zero, err
	}
	x := v.s[i]
	last := len(v.s) - 1
	v.s[i] = v.s[last]
	v.s[last] = zero
	v.s = v.s[:last]
	return x, nil
}

// RemoveUnchecked deletes the element at i without the last-element check.
// The caller guarantees v holds more than one element.
func (v *Vec[T]) RemoveUnchecked(i int) T {
	x := v.s[i]
	v.s = slices.Delete(v.s, i, i+1)
	return x
}

// Drain removes the elements in [lo, hi) and returns them. It returns
// ErrLastElement when the range covers the whole Vec.
func (v *Vec[T]) Drain(lo, hi int) ([]T, error) {
	out := v.s[lo:hi:len(v.s)]
	if err := shrink("drain", len(v.s), len(out)); err != nil {
		return nil, err
	}
	out = slices.Clone(out)
	v.s = slices.Delete(v.s, lo, hi)
	return out, nil
}

// Retain keeps the elements for which keep returns true, in order. If keep
// rejects every element it returns ErrLastElement and v is unchanged.
// keep is called exactly once per element.
func (v *Vec[T]) Retain(keep func(T) bool) error {
	n := compact(v.s, keep)
	if err := shrink("retain", len(v.s), len(v.s)-n); err != nil {
		return err
	}
	clear(v.s[n:])
	v.s = v.s[:n]
	return nil
}

// DedupFunc collapses runs of consecutive elements for which eq is true
// into their first element.
func (v *Vec[T]) DedupFunc(eq func(a, b T) bool) {
	v.s = slices.CompactFunc(v.s, eq)
}

// Dedup collapses runs of equal consecutive elements.
func Dedup[T comparable](v *Vec[T]) {
	v.s = slices.Compact(v.s)
}

// Truncate keeps the first n elements. It does nothing if n >= Len().
func (v *Vec[T]) Truncate(n NonZero[int]) {
	if k := n.Get(); k < len(v.s) {
		clear(v.s[k:])
		v.s = v.s[:k]
	}
}

// Resize grows v to n elements by appending copies of x, or truncates it.
func (v *Vec[T]) Resize(n NonZero[int], x T) {
	v.ResizeWith(n, func() T { return x })
}

// ResizeWith is like Resize but calls f for each new element.
func (v *Vec[T]) ResizeWith(n NonZero[int], f func() T) {
	k := n.Get()
	if k <= len(v.s) {
		v.Truncate(n)
		return
	}
	v.s = slices.Grow(v.s, k-len(v.s))
	for len(v.s) < k {
		v.s = append(v.s, f())
	}
}

// SplitOff keeps [0, at) in v and returns the rest. Both halves share the
// backing array; capacities are clipped so neither can overwrite the other.
func (v *Vec[T]) SplitOff(at NonZero[int]) []T {
	k := at.Get()
	tail := v.s[k:len(v.s):len(v.s)]
	v.s = v.s[:k:k]
	return tail
}

// Format implements fmt.Formatter.
func (v Vec[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.s)
}

// MarshalYAML implements yaml.Marshaler.
func (v Vec[T]) MarshalYAML() (any, error) {
	return v.s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. An empty sequence is rejected
// with an error wrapping ErrEmpty and v is left unchanged.
func (v *Vec[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	nv, err := TryFromSlice(items)
	if err != nil {
		return fmt.Errorf("nonempty: yaml sequence at line %d: %w", node.Line, err)
	}
	*v = nv
	return nil
}

var (
	_ yaml.Marshaler   = Vec[int]{}
	_ yaml.Unmarshaler = (*Vec[int])(nil)
)
