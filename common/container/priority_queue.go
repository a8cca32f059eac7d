package container

import (
	"cmp"
	"iter"
	"slices"

	"github.com/frozenexplorer/PoPL-project/common/options"
)

const kindPriorityQueue = "PriorityQueue"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*PriorityQueue[int])(nil)
)

// PriorityQueue 优先队列 线程不安全
// 基于 slice 的二叉小顶堆 compare(a, b) < 0 表示 a 优先级更高
// 相等元素之间不保证先进先出
type PriorityQueue[T any] struct {
	data    []T
	compare func(a, b T) int
	equal   func(a, b T) bool
}

// NewPriorityQueue 使用比较函数创建优先队列
// compare 为 nil 属于调用方错误 直接 panic
func NewPriorityQueue[T any](compare func(a, b T) int, opts ...options.Option[Options[T]]) *PriorityQueue[T] {
	if compare == nil {
		panic("container: NewPriorityQueue called with nil compare")
	}
	opt := newOptions(opts)
	return &PriorityQueue[T]{
		data:    make([]T, 0, opt.capacity),
		compare: compare,
		equal:   opt.equal,
	}
}

// NewOrderedPriorityQueue 按自然顺序创建优先队列
func NewOrderedPriorityQueue[T cmp.Ordered](opts ...options.Option[Options[T]]) *PriorityQueue[T] {
	return NewPriorityQueue(cmp.Compare[T], opts...)
}

// Empty 判断是否为空
func (pq *PriorityQueue[T]) Empty() bool {
	return len(pq.data) == 0
}

// Size 元素个数
func (pq *PriorityQueue[T]) Size() int {
	return len(pq.data)
}

// Clear 清空
func (pq *PriorityQueue[T]) Clear() {
	clear(pq.data)
	pq.data = pq.data[:0]
}

// Contains 判断是否包含某个值
func (pq *PriorityQueue[T]) Contains(val T) bool {
	return slices.ContainsFunc(pq.data, func(v T) bool {
		return pq.equal(v, val)
	})
}

// Replace 替换堆数组 index 位置的元素 并修复堆
func (pq *PriorityQueue[T]) Replace(index int, val T) error {
	if index < 0 || index >= len(pq.data) {
		return indexError(kindPriorityQueue, "replace", index, len(pq.data))
	}
	if isAbsent(val) {
		return absentError(kindPriorityQueue, "replace")
	}
	pq.data[index] = val
	// 新值只可能向一个方向移动
	if !pq.siftUp(index) {
		pq.siftDown(index)
	}
	return nil
}

// Value 按堆数组顺序拷贝 不是有序的
func (pq *PriorityQueue[T]) Value() []T {
	return slices.Clone(pq.data)
}

// All 按堆数组顺序迭代
func (pq *PriorityQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(pq.data); i++ {
			if !yield(pq.data[i]) {
				return
			}
		}
	}
}

// String 调试输出
func (pq *PriorityQueue[T]) String() string {
	return format(kindPriorityQueue, pq.Size(), pq.All())
}

// Add 插入 O(logn)
func (pq *PriorityQueue[T]) Add(val T) error {
	if isAbsent(val) {
		return absentError(kindPriorityQueue, "add")
	}
	pq.data = append(pq.data, val)
	pq.siftUp(len(pq.data) - 1)
	return nil
}

// Remove 移除堆顶 O(logn)
func (pq *PriorityQueue[T]) Remove() (val T, err error) {
	if pq.Empty() {
		return val, emptyError(kindPriorityQueue, "remove")
	}
	val = pq.data[0]
	last := len(pq.data) - 1
	pq.data[0] = pq.data[last]
	var zero T
	pq.data[last] = zero
	pq.data = pq.data[:last]
	if last > 0 {
		pq.siftDown(0)
	}
	return val, nil
}

// Peek 查看堆顶 O(1)
func (pq *PriorityQueue[T]) Peek() (val T, err error) {
	if pq.Empty() {
		return val, emptyError(kindPriorityQueue, "peek")
	}
	return pq.data[0], nil
}

// siftUp 上浮 只有严格优先于父节点才交换 返回是否发生移动
func (pq *PriorityQueue[T]) siftUp(index int) bool {
	moved := false
	for index > 0 {
		parent := (index - 1) / 2
		if pq.compare(pq.data[index], pq.data[parent]) >= 0 {
			break
		}
		pq.data[index], pq.data[parent] = pq.data[parent], pq.data[index]
		index = parent
		moved = true
	}
	return moved
}

// siftDown 下沉 与严格更优的子节点交换
func (pq *PriorityQueue[T]) siftDown(index int) {
	size := len(pq.data)
	for {
		smallest := index
		left, right := 2*index+1, 2*index+2
		if left < size && pq.compare(pq.data[left], pq.data[smallest]) < 0 {
			smallest = left
		}
		if right < size && pq.compare(pq.data[right], pq.data[smallest]) < 0 {
			smallest = right
		}
		if smallest == index {
			return
		}
		pq.data[index], pq.data[smallest] = pq.data[smallest], pq.data[index]
		index = smallest
	}
}
