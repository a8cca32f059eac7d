package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntList(t *testing.T, values ...int) *List[int] {
	t.Helper()
	l := NewList[int](WithCapacity[int](len(values)))
	for _, v := range values {
		require.NoError(t, l.AddLast(v))
	}
	return l
}

func TestListAddAndGet(t *testing.T) {
	l := newIntList(t, 2, 3)
	require.NoError(t, l.AddFirst(1))
	require.NoError(t, l.AddAt(3, 5))
	require.NoError(t, l.AddAt(3, 4))
	require.Equal(t, []int{1, 2, 3, 4, 5}, l.Value())

	for i, want := range []int{1, 2, 3, 4, 5} {
		got, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestListIndexBounds(t *testing.T) {
	l := newIntList(t, 1, 2, 3)

	require.ErrorIs(t, l.AddAt(4, 9), ErrIndexOutOfRange)
	require.ErrorIs(t, l.AddAt(-1, 9), ErrIndexOutOfRange)
	_, err := l.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.RemoveAt(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Equal(t, []int{1, 2, 3}, l.Value())

	require.NoError(t, l.AddAt(3, 9))
	require.Equal(t, []int{1, 2, 3, 9}, l.Value())

	require.EqualError(t, l.AddAt(6, 0), "List addAt index 6, valid [0, 5): index out of range")
}

func TestListRemove(t *testing.T) {
	l := newIntList(t, 1, 2, 3, 4, 5)

	v, err := l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 5, v)

	v, err = l.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, []int{2, 4}, l.Value())

	v, err = l.Peek()
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = l.Remove()
	require.NoError(t, err)
	require.Equal(t, 4, v)
	v, err = l.Remove()
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestListEmpty(t *testing.T) {
	l := NewList[string]()
	_, err := l.RemoveFirst()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.RemoveLast()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.Remove()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.Peek()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.RemoveAt(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListAbsentValue(t *testing.T) {
	l := NewList[error]()
	require.ErrorIs(t, l.Add(nil), ErrAbsentValue)
	require.ErrorIs(t, l.AddFirst(nil), ErrAbsentValue)
	require.ErrorIs(t, l.AddLast(nil), ErrAbsentValue)
	require.ErrorIs(t, l.AddAt(0, nil), ErrAbsentValue)
	require.True(t, l.Empty())

	// 下标先于值检查
	require.ErrorIs(t, l.AddAt(1, nil), ErrIndexOutOfRange)
}

func TestListValueIsCopy(t *testing.T) {
	l := newIntList(t, 1, 2, 3)
	values := l.Value()
	values[0] = 100
	got, err := l.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestListAllStopsEarly(t *testing.T) {
	l := newIntList(t, 1, 2, 3, 4)
	var seen []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	require.Equal(t, []int{1, 2}, seen)
	require.Equal(t, 4, l.Size())
}

func TestListClearReuse(t *testing.T) {
	l := newIntList(t, 1, 2)
	l.Clear()
	require.True(t, l.Empty())
	require.NoError(t, l.Add(3))
	require.Equal(t, []int{3}, l.Value())
}
