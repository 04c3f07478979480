// Package smallvec provides a growable sequence that keeps up to a fixed
// number of elements inline, in an array embedded in the value, and moves
// them to a heap slice ("spills") once that array is full.
//
// The inline array type A fixes the inline capacity: SmallVec[int, [8]int]
// holds eight ints before it allocates. The zero value is an empty,
// unspilled SmallVec ready to use.
//
// Slices returned by Slice alias the inline array while the SmallVec is not
// spilled. They are invalidated by any operation that grows past the inline
// capacity, and they must not outlive the SmallVec value they came from.
// All methods take a pointer receiver for that reason; copying a SmallVec
// copies its inline elements but shares its heap slice.
package smallvec

import (
	"slices"

	"github.com/rawbytedev/nonempty/internal/common"
)

// Array is the constraint on the inline buffer type: a non-zero-length
// array of T.
type Array[T any] = common.Array[T]

type SmallVec[T any, A Array[T]] struct {
	inline A
	heap   []T // non-nil once spilled
	n      int // length while inline
}

// New returns an empty SmallVec.
func New[T any, A Array[T]]() SmallVec[T, A] {
	return SmallVec[T, A]{}
}

// WithCapacity returns an empty SmallVec able to hold capacity elements
// without reallocating. Capacities above the inline size spill immediately.
func WithCapacity[T any, A Array[T]](capacity int) SmallVec[T, A] {
	var s SmallVec[T, A]
	if capacity > s.InlineCap() {
		s.heap = make([]T, 0, capacity)
	}
	return s
}

// FromBuf returns a SmallVec whose inline array is buf, full to capacity.
func FromBuf[T any, A Array[T]](buf A) SmallVec[T, A] {
	s := SmallVec[T, A]{inline: buf}
	s.n = s.InlineCap()
	return s
}

// FromSlice copies src into a new SmallVec, inline when it fits.
func FromSlice[T any, A Array[T]](src []T) SmallVec[T, A] {
	var s SmallVec[T, A]
	if len(src) > s.InlineCap() {
		s.heap = slices.Clone(src)
		return s
	}
	copy(common.ArraySlice[T](&s.inline), src)
	s.n = len(src)
	return s
}

// InlineCap is the number of elements that fit before spilling.
func (s *SmallVec[T, A]) InlineCap() int {
	return common.ArrayLen[T, A]()
}

// Spilled reports whether the elements live on the heap.
func (s *SmallVec[T, A]) Spilled() bool {
	return s.heap != nil
}

func (s *SmallVec[T, A]) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return s.n
}

func (s *SmallVec[T, A]) Cap() int {
	if s.heap != nil {
		return cap(s.heap)
	}
	return s.InlineCap()
}

func (s *SmallVec[T, A]) IsEmpty() bool {
	return s.Len() == 0
}

// Slice returns the elements as a regular slice without copying.
func (s *SmallVec[T, A]) Slice() []T {
	if s.heap != nil {
		return s.heap
	}
	return common.ArrayPrefix[T](&s.inline, s.n)
}

func (s *SmallVec[T, A]) At(i int) T {
	return s.Slice()[i]
}

func (s *SmallVec[T, A]) Set(i int, v T) {
	s.Slice()[i] = v
}

// spill moves the inline elements into a heap slice of at least capacity.
func (s *SmallVec[T, A]) spill(capacity int) {
	capacity = max(capacity, 2*s.InlineCap())
	h := make([]T, s.n, capacity)
	buf := common.ArraySlice[T](&s.inline)
	copy(h, buf[:s.n])
	clear(buf[:s.n])
	s.heap = h
	s.n = 0
}

// Reserve makes room for at least additional more elements.
func (s *SmallVec[T, A]) Reserve(additional int) {
	if s.Len()+additional <= s.Cap() {
		return
	}
	if s.heap != nil {
		s.heap = slices.Grow(s.heap, additional)
		return
	}
	s.spill(s.n + additional)
}

func (s *SmallVec[T, A]) Push(v T) {
	if s.heap == nil && s.n < s.InlineCap() {
		common.ArraySlice[T](&s.inline)[s.n] = v
		s.n++
		return
	}
	if s.heap == nil {
		s.spill(s.n + 1)
	}
	s.heap = append(s.heap, v)
}

// Insert places v at index i, shifting later elements right.
// It panics if i > Len(), like a slice expression.
func (s *SmallVec[T, A]) Insert(i int, v T) {
	s.InsertMany(i, v)
}

// InsertMany places vs at index i, shifting later elements right.
func (s *SmallVec[T, A]) InsertMany(i int, vs ...T) {
	if i < 0 || i > s.Len() {
		panic("smallvec: insertion index out of range")
	}
	s.Reserve(len(vs))
	if s.heap != nil {
		s.heap = slices.Insert(s.heap, i, vs...)
		return
	}
	k := len(vs)
	buf := common.ArraySlice[T](&s.inline)
	copy(buf[i+k:s.n+k], buf[i:s.n])
	copy(buf[i:i+k], vs)
	s.n += k
}

// Extend appends vs in order.
func (s *SmallVec[T, A]) Extend(vs ...T) {
	s.InsertMany(s.Len(), vs...)
}

// Append moves every element of *other to the end of s and empties *other.
func (s *SmallVec[T, A]) Append(other *[]T) {
	s.Extend(*other...)
	clear(*other)
	*other = (*other)[:0]
}

// Pop removes and returns the last element. It reports false when empty.
func (s *SmallVec[T, A]) Pop() (T, bool) {
	var zero T
	items := s.Slice()
	if len(items) == 0 {
		return zero, false
	}
	last := items[len(items)-1]
	items[len(items)-1] = zero
	s.setLen(len(items) - 1)
	return last, true
}

// Remove deletes and returns the element at i, shifting later elements left.
func (s *SmallVec[T, A]) Remove(i int) T {
	items := s.Slice()
	v := items[i]
	copy(items[i:], items[i+1:])
	var zero T
	items[len(items)-1] = zero
	s.setLen(len(items) - 1)
	return v
}

// SwapRemove deletes and returns the element at i, moving the last element
// into its place.
func (s *SmallVec[T, A]) SwapRemove(i int) T {
	items := s.Slice()
	v := items[i]
	last := len(items) - 1
	items[i] = items[last]
	var zero T
	items[last] = zero
	s.setLen(last)
	return v
}

// Truncate shortens s to n elements. It does nothing if n >= Len().
func (s *SmallVec[T, A]) Truncate(n int) {
	items := s.Slice()
	if n >= len(items) {
		return
	}
	clear(items[n:])
	s.setLen(n)
}

// Drain removes the elements in [lo, hi) and returns them in a new slice.
func (s *SmallVec[T, A]) Drain(lo, hi int) []T {
	items := s.Slice()
	out := slices.Clone(items[lo:hi:len(items)])
	copy(items[lo:], items[hi:])
	s.Truncate(len(items) - (hi - lo))
	return out
}

// Retain keeps only the elements for which keep returns true, in order.
func (s *SmallVec[T, A]) Retain(keep func(T) bool) {
	items := s.Slice()
	j := 0
	for _, v := range items {
		if keep(v) {
			items[j] = v
			j++
		}
	}
	s.Truncate(j)
}

// DedupFunc collapses runs of consecutive elements for which eq is true.
func (s *SmallVec[T, A]) DedupFunc(eq func(a, b T) bool) {
	s.setLen(len(slices.CompactFunc(s.Slice(), eq)))
}

// ShrinkToFit drops spare capacity. A spilled SmallVec whose elements fit
// inline moves back into the inline array.
func (s *SmallVec[T, A]) ShrinkToFit() {
	if s.heap == nil {
		return
	}
	if l := len(s.heap); l <= s.InlineCap() {
		copy(common.ArraySlice[T](&s.inline), s.heap)
		s.heap = nil
		s.n = l
		return
	}
	if cap(s.heap) > len(s.heap) {
		s.heap = append(make([]T, 0, len(s.heap)), s.heap...)
	}
}

func (s *SmallVec[T, A]) Clear() {
	s.Truncate(0)
}

// IntoSlice moves the elements out into a regular slice, reusing the heap
// slice when spilled. s is left empty.
func (s *SmallVec[T, A]) IntoSlice() []T {
	var out []T
	if s.heap != nil {
		out = s.heap
	} else {
		out = slices.Clone(s.Slice())
	}
	*s = SmallVec[T, A]{}
	return out
}

func (s *SmallVec[T, A]) setLen(n int) {
	if s.heap != nil {
		s.heap = s.heap[:n]
		return
	}
	s.n = n
}
