package common

import (
	"reflect"
	"unsafe"
)

// Array is the set of fixed-size arrays whose length is known to be
// non-zero at compile time. [0]T is not a member, so instantiating a
// generic function with a zero-length array fails to build.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[128]T | ~[256]T
}

// ArrayLen returns the element count of the array type A.
func ArrayLen[T any, A Array[T]]() int {
	var (
		a A
		z T
	)
	if sz := unsafe.Sizeof(z); sz != 0 {
		return int(unsafe.Sizeof(a) / sz)
	}
	// zero-sized elements: sizes carry no count
	return reflect.TypeFor[A]().Len()
}

// ArraySlice aliases the whole array at p as a slice without copying.
// The slice is only valid while *p is.
func ArraySlice[T any, A Array[T]](p *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), ArrayLen[T, A]())
}

// ArrayPrefix aliases the first n elements of the array at p.
func ArrayPrefix[T any, A Array[T]](p *A, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n)
}

// Cast reinterprets p as a pointer to To. From and To must have the same
// size and field layout; nothing is checked.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// SameArray reports whether a and b start at the same element of the same
// backing array. Used to observe that a conversion did not copy.
func SameArray[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
