package nonempty

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/nonempty/internal/common"
)

// Slice is a view of at least one contiguous element. It has the same
// memory layout as []T and shares the backing array of whatever it was
// taken from: a Vec, a SmallVec, an array or a plain slice.
//
// A Slice never changes length. Elements can be replaced in place, which
// is visible through the lender. A view taken from a Vec or SmallVec is
// only valid until the lender is shrunk or grows past its capacity.
type Slice[T any] struct {
	s []T
}

// View returns s as a Slice, or ErrEmpty if s has no elements.
// No elements are copied.
func View[T any](s []T) (Slice[T], error) {
	if len(s) == 0 {
		return Slice[T]{}, ErrEmpty
	}
	return Slice[T]{s: s}, nil
}

// ViewUnchecked returns s as a Slice without checking its length.
// The caller guarantees len(s) > 0; an empty Slice breaks First, Last and
// Len.
func ViewUnchecked[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// ViewPtr reinterprets *p in place as a *Slice. Writes through either
// pointer are seen by the other. It returns ErrEmpty if *p has no elements.
func ViewPtr[T any](p *[]T) (*Slice[T], error) {
	if len(*p) == 0 {
		return nil, ErrEmpty
	}
	return common.Cast[Slice[T]](p), nil
}

// ViewArray views the whole array at arr. The array length is checked
// to be non-zero at compile time.
func ViewArray[T any, A Array[T]](arr *A) Slice[T] {
	return Slice[T]{s: common.ArraySlice[T](arr)}
}

// Raw returns the underlying slice. No elements are copied.
func (s Slice[T]) Raw() []T {
	return s.s
}

// RawPtr reinterprets s in place as a *[]T.
func (s *Slice[T]) RawPtr() *[]T {
	return common.Cast[[]T](s)
}

// Len is the number of elements in the view, at least one.
func (s Slice[T]) Len() NonZero[int] {
	return positive(len(s.s))
}

// HasOne reports whether s holds exactly one element.
func (s Slice[T]) HasOne() bool {
	return len(s.s) == 1
}

// First returns the first element. It cannot fail.
func (s Slice[T]) First() T {
	return s.s[0]
}

func (s Slice[T]) Last() T {
	return s.s[len(s.s)-1]
}

func (s Slice[T]) FirstPtr() *T {
	return &s.s[0]
}

func (s Slice[T]) LastPtr() *T {
	return &s.s[len(s.s)-1]
}

// At returns element i, panicking out of range like a slice index.
func (s Slice[T]) At(i int) T {
	return s.s[i]
}

// Set replaces element i; the lender sees the write.
func (s Slice[T]) Set(i int, v T) {
	s.s[i] = v
}

func (s Slice[T]) Swap(i, j int) {
	s.s[i], s.s[j] = s.s[j], s.s[i]
}

func (s Slice[T]) Reverse() {
	slices.Reverse(s.s)
}

// Full returns the whole view, the equivalent of s[:].
func (s Slice[T]) Full() Slice[T] {
	return Slice[T]{s: s.s[:len(s.s):len(s.s)]}
}

// To returns the elements up to and including index i. The result always
// holds at least one element; i out of range panics.
func (s Slice[T]) To(i int) Slice[T] {
	_ = s.s[i] // bounds check; rejects negative i
	return Slice[T]{s: s.s[: i+1 : i+1]}
}

// From returns the elements from index i to the end, or ErrEmpty when i
// equals the length.
func (s Slice[T]) From(i int) (Slice[T], error) {
	return span(s.s, i, len(s.s))
}

// Range returns the elements in [lo, hi), or ErrEmpty when lo == hi.
func (s Slice[T]) Range(lo, hi int) (Slice[T], error) {
	return span(s.s, lo, hi)
}

// Clone copies the elements into a new Vec.
func (s Slice[T]) Clone() Vec[T] {
	return Vec[T]{s: slices.Clone(s.s)}
}

// Repeat returns a Vec holding n back-to-back copies of s.
func (s Slice[T]) Repeat(n NonZero[int]) Vec[T] {
	return Vec[T]{s: slices.Repeat(s.s, n.Get())}
}

// Format implements fmt.Formatter.
func (s Slice[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.s)
}

// MarshalYAML implements yaml.Marshaler.
func (s Slice[T]) MarshalYAML() (any, error) {
	return s.s, nil
}

var _ yaml.Marshaler = Slice[int]{}
