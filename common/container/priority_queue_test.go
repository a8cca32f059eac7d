package container

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

// heapInvariant 父节点不劣于子节点
func heapInvariant[T any](pq *PriorityQueue[T]) bool {
	for i := 1; i < len(pq.data); i++ {
		if pq.compare(pq.data[(i-1)/2], pq.data[i]) > 0 {
			return false
		}
	}
	return true
}

func TestPriorityQueueScenario(t *testing.T) {
	pq := NewOrderedPriorityQueue[int]()
	require.NoError(t, pq.Add(5))
	require.NoError(t, pq.Add(1))
	require.NoError(t, pq.Add(3))

	for _, want := range []int{1, 3, 5} {
		v, err := pq.Remove()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, err := pq.Remove()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = pq.Peek()
	require.ErrorIs(t, err, ErrEmpty)
}

type file struct {
	name string
	size int64
}

func TestPriorityQueueComparator(t *testing.T) {
	// 大的优先
	pq := NewPriorityQueue(func(a, b *file) int { return cmp.Compare(b.size, a.size) })
	files := []*file{{"a", 10}, {"b", 300}, {"c", 20}, {"d", 300}, {"e", 1}}
	for _, f := range files {
		require.NoError(t, pq.Add(f))
		require.True(t, heapInvariant(pq))
	}
	top, err := pq.Peek()
	require.NoError(t, err)
	require.EqualValues(t, 300, top.size)

	var sizes []int64
	for !pq.Empty() {
		f, err := pq.Remove()
		require.NoError(t, err)
		require.True(t, heapInvariant(pq))
		sizes = append(sizes, f.size)
	}
	require.Equal(t, []int64{300, 300, 20, 10, 1}, sizes)

	require.ErrorIs(t, pq.Add(nil), ErrAbsentValue)
}

func TestPriorityQueueStorageOrder(t *testing.T) {
	pq := NewOrderedPriorityQueue[int](WithCapacity[int](6))
	for _, v := range []int{1, 5, 2, 6, 7, 3} {
		require.NoError(t, pq.Add(v))
	}
	// 堆数组顺序 不是排序后的顺序
	require.Equal(t, []int{1, 5, 2, 6, 7, 3}, pq.Value())
	require.Equal(t, "PriorityQueue(size=6) [1 5 2 6 7 3]", pq.String())
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, drain(t, pq))
}

func TestPriorityQueueReplaceRepairsHeap(t *testing.T) {
	pq := NewOrderedPriorityQueue[int]()
	for _, v := range []int{1, 2, 3, 4, 5, 6, 7} {
		require.NoError(t, pq.Add(v))
	}
	// 根节点变大 需要下沉
	require.NoError(t, pq.Replace(0, 10))
	require.True(t, heapInvariant(pq))
	// 叶子变小 需要上浮
	require.NoError(t, pq.Replace(pq.Size()-1, 0))
	require.True(t, heapInvariant(pq))

	require.Equal(t, []int{0, 2, 3, 4, 5, 6, 10}, drain(t, pq))
}

func TestNewPriorityQueueNilCompare(t *testing.T) {
	require.Panics(t, func() {
		NewPriorityQueue[int](nil)
	})
}

func drain[T any](t *testing.T, pq *PriorityQueue[T]) []T {
	t.Helper()
	var out []T
	for !pq.Empty() {
		v, err := pq.Remove()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}
