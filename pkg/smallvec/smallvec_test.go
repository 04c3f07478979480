package smallvec

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var s SmallVec[int, [3]int]
	require.True(t, s.IsEmpty())
	require.False(t, s.Spilled())
	require.Equal(t, 3, s.Cap())
	require.Nil(t, s.Slice())

	_, ok := s.Pop()
	require.False(t, ok)
}

func TestPushSpills(t *testing.T) {
	s := New[string, [2]string]()
	s.Push("a")
	s.Push("b")
	require.False(t, s.Spilled())

	s.Push("c")
	require.True(t, s.Spilled())
	require.Equal(t, []string{"a", "b", "c"}, s.Slice())
	require.Equal(t, 4, s.Cap())
}

func TestWithCapacity(t *testing.T) {
	s := WithCapacity[int, [4]int](3)
	require.False(t, s.Spilled())

	s = WithCapacity[int, [4]int](100)
	require.True(t, s.Spilled())
	require.Equal(t, 100, s.Cap())
	require.Equal(t, 0, s.Len())
}

func TestFromSlice(t *testing.T) {
	src := []int{1, 2, 3}
	s := FromSlice[int, [4]int](src)
	require.False(t, s.Spilled())
	src[0] = 9
	require.Equal(t, []int{1, 2, 3}, s.Slice())

	big := FromSlice[int, [2]int]([]int{1, 2, 3, 4, 5})
	require.True(t, big.Spilled())
	require.Equal(t, 5, big.Len())
}

func TestFromBuf(t *testing.T) {
	s := FromBuf[byte]([4]byte{'a', 'b', 'c', 'd'})
	require.Equal(t, "abcd", string(s.Slice()))
	s.Push('e')
	require.True(t, s.Spilled())
	require.Equal(t, "abcde", string(s.Slice()))
}

func TestInsertMany(t *testing.T) {
	s := FromSlice[int, [8]int]([]int{1, 5})
	s.InsertMany(1, 2, 3, 4)
	require.False(t, s.Spilled())
	require.Equal(t, []int{1, 2, 3, 4, 5}, s.Slice())

	s.InsertMany(0, -3, -2, -1, 0)
	require.True(t, s.Spilled())
	require.Equal(t, []int{-3, -2, -1, 0, 1, 2, 3, 4, 5}, s.Slice())

	require.Panics(t, func() { s.Insert(10, 0) })
	require.Panics(t, func() { s.Insert(-1, 0) })
}

func TestAppend(t *testing.T) {
	s := FromSlice[int, [4]int]([]int{1})
	other := []int{2, 3}
	s.Append(&other)
	require.Empty(t, other)
	require.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestRemoveDrainRetain(t *testing.T) {
	s := FromSlice[int, [8]int]([]int{1, 2, 3, 4, 5, 6})
	require.Equal(t, 2, s.Remove(1))
	require.Equal(t, 1, s.SwapRemove(0))
	require.Equal(t, []int{6, 3, 4, 5}, s.Slice())

	require.Equal(t, []int{3, 4}, s.Drain(1, 3))
	require.Equal(t, []int{6, 5}, s.Slice())

	s.Retain(func(x int) bool { return x > 5 })
	require.Equal(t, []int{6}, s.Slice())

	s.Clear()
	require.True(t, s.IsEmpty())
}

func TestRemovedSlotsAreCleared(t *testing.T) {
	s := FromSlice[*int, [4]*int]([]*int{new(int), new(int), new(int)})
	s.Truncate(1)
	require.Equal(t, 1, s.Len())

	// the inline tail no longer references the dropped pointers
	require.Nil(t, s.inline[1])
	require.Nil(t, s.inline[2])
}

func TestDedupFunc(t *testing.T) {
	s := FromSlice[int, [8]int]([]int{1, 1, 2, 2, 2, 3, 1})
	s.DedupFunc(func(a, b int) bool { return a == b })
	require.Equal(t, []int{1, 2, 3, 1}, s.Slice())
}

func TestShrinkToFit(t *testing.T) {
	s := FromSlice[int, [2]int]([]int{1, 2, 3})
	s.Reserve(100)
	require.GreaterOrEqual(t, s.Cap(), 103)

	s.ShrinkToFit()
	require.Equal(t, 3, s.Cap())

	s.Truncate(2)
	s.ShrinkToFit()
	require.False(t, s.Spilled())
	require.Equal(t, []int{1, 2}, s.Slice())
}

func TestIntoSlice(t *testing.T) {
	s := FromSlice[int, [4]int]([]int{1, 2})
	out := s.IntoSlice()
	require.Equal(t, []int{1, 2}, out)
	require.True(t, s.IsEmpty())

	// inline elements are copied out, so s can be reused
	s.Push(9)
	require.Equal(t, []int{1, 2}, out)
}

func TestZeroSizedElements(t *testing.T) {
	s := New[struct{}, [2]struct{}]()
	require.Equal(t, 2, s.InlineCap())
	s.Push(struct{}{})
	s.Push(struct{}{})
	s.Push(struct{}{})
	require.True(t, s.Spilled())
	require.Equal(t, 3, s.Len())
}

func TestModelQuick(t *testing.T) {
	f := func(ops []uint8, args []int16) bool {
		var s SmallVec[int16, [4]int16]
		var model []int16
		for i, op := range ops {
			var x int16
			if i < len(args) {
				x = args[i]
			}
			switch op % 6 {
			case 0:
				s.Push(x)
				model = append(model, x)
			case 1:
				got, ok := s.Pop()
				if ok != (len(model) > 0) {
					return false
				}
				if ok {
					if got != model[len(model)-1] {
						return false
					}
					model = model[:len(model)-1]
				}
			case 2:
				idx := int(uint16(x)) % (len(model) + 1)
				s.Insert(idx, x)
				model = slices.Insert(model, idx, x)
			case 3:
				if len(model) == 0 {
					continue
				}
				idx := int(uint16(x)) % len(model)
				if s.Remove(idx) != model[idx] {
					return false
				}
				model = slices.Delete(model, idx, idx+1)
			case 4:
				s.Retain(func(v int16) bool { return v%2 == 0 })
				model = slices.DeleteFunc(model, func(v int16) bool { return v%2 != 0 })
			case 5:
				s.ShrinkToFit()
			}
			if s.Len() > s.Cap() {
				return false
			}
		}
		return slices.Equal(s.Slice(), model)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 1000}))
}
