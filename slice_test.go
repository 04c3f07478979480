package nonempty

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/nonempty/internal/common"
)

func TestView(t *testing.T) {
	_, err := View([]string{})
	require.ErrorIs(t, err, ErrEmpty)

	raw := []string{"a", "b", "c"}
	s, err := View(raw)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len().Get())
	require.Equal(t, "a", s.First())
	require.Equal(t, "c", s.Last())
	require.True(t, common.SameArray(raw, s.Raw()))

	s.Set(1, "B")
	require.Equal(t, "B", raw[1])
}

func TestViewSingle(t *testing.T) {
	s := ViewUnchecked([]int{5})
	require.True(t, s.HasOne())
	require.Equal(t, 5, s.First())
	require.Equal(t, 5, s.Last())
	require.Equal(t, s.FirstPtr(), s.LastPtr())
}

func TestViewPtr(t *testing.T) {
	var empty []int
	_, err := ViewPtr(&empty)
	require.ErrorIs(t, err, ErrEmpty)

	raw := []int{1, 2, 3}
	p, err := ViewPtr(&raw)
	require.NoError(t, err)
	require.Equal(t, 3, p.Len().Get())

	p.Set(0, 7)
	require.Equal(t, 7, raw[0])
	require.Same(t, &raw, p.RawPtr())
}

func TestViewArray(t *testing.T) {
	arr := [4]int{1, 2, 3, 4}
	s := ViewArray[int](&arr)
	require.Equal(t, 4, s.Len().Get())
	s.Set(3, 40)
	require.Equal(t, 40, arr[3])

	type empty struct{}
	zs := [3]empty{}
	require.Equal(t, 3, ViewArray[empty](&zs).Len().Get())
}

func TestViewRanges(t *testing.T) {
	s := ViewUnchecked([]int{99, 98, 97})
	require.Equal(t, []int{99, 98}, s.To(1).Raw())
	require.Equal(t, []int{99}, s.To(0).Raw())
	require.Equal(t, s.Raw(), s.Full().Raw())

	_, err := s.Range(2, 2)
	require.ErrorIs(t, err, ErrEmpty)
	last, err := s.From(2)
	require.NoError(t, err)
	require.True(t, last.HasOne())
	require.Equal(t, 97, last.First())

	// views of views keep sharing the same array
	inner := s.To(1).To(0)
	inner.Set(0, 1)
	require.Equal(t, 1, s.First())
}

func TestViewSwapReverse(t *testing.T) {
	s := ViewUnchecked([]int{1, 2, 3})
	s.Swap(0, 2)
	require.Equal(t, []int{3, 2, 1}, s.Raw())
	s.Reverse()
	require.Equal(t, []int{1, 2, 3}, s.Raw())
}

func TestViewCloneRepeat(t *testing.T) {
	s := ViewUnchecked([]int{1, 2})
	v := s.Clone()
	require.Equal(t, []int{1, 2}, v.Raw())
	require.False(t, common.SameArray(s.Raw(), v.Raw()))

	r := s.Repeat(MustNonZero(3))
	require.Equal(t, []int{1, 2, 1, 2, 1, 2}, r.Raw())
}

func TestFormat(t *testing.T) {
	s := ViewUnchecked([]int{1, 2})
	require.Equal(t, "[1 2]", fmt.Sprint(s))
	require.Equal(t, "[1 2]", fmt.Sprintf("%v", Of(1, 2)))
	require.Equal(t, "[01 02]", fmt.Sprintf("%02d", s))
}

func TestViewBoundsUseLength(t *testing.T) {
	s, err := View(make([]int, 2, 8))
	require.NoError(t, err)

	require.Panics(t, func() { _, _ = s.Range(1, 5) })
	require.Panics(t, func() { _, _ = s.From(3) })
	require.Panics(t, func() { s.To(2) })

	tail, err := s.From(1)
	require.NoError(t, err)
	require.Equal(t, 1, cap(tail.Raw()))
}
