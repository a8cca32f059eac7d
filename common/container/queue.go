package container

import (
	"iter"

	"github.com/frozenexplorer/PoPL-project/common/options"
)

const kindQueue = "Queue"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Queue[int])(nil)
)

// Queue 队列 先进先出 线程不安全
// 底层采用双向链表 入队出队都是 O(1) 不需要扩容缩容
type Queue[T any] struct {
	list  linkedList[T]
	equal func(a, b T) bool
}

// NewQueue 创建队列
func NewQueue[T any](opts ...options.Option[Options[T]]) *Queue[T] {
	opt := newOptions(opts)
	return &Queue[T]{
		equal: opt.equal,
	}
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.list.size == 0
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.list.size
}

// Clear 清空队列
func (q *Queue[T]) Clear() {
	q.list.clear()
}

// Contains 判断是否包含某个值
func (q *Queue[T]) Contains(val T) bool {
	return q.list.contains(val, q.equal)
}

// Replace 替换元素 index 0 为队首
func (q *Queue[T]) Replace(index int, val T) error {
	if index < 0 || index >= q.list.size {
		return indexError(kindQueue, "replace", index, q.list.size)
	}
	if isAbsent(val) {
		return absentError(kindQueue, "replace")
	}
	q.list.at(index).value = val
	return nil
}

// Value 获取队列数据 队首到队尾
func (q *Queue[T]) Value() []T {
	return q.list.values()
}

// All 队首到队尾迭代
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.all()
}

// String 调试输出
func (q *Queue[T]) String() string {
	return format(kindQueue, q.Size(), q.All())
}

// Enqueue 入队
func (q *Queue[T]) Enqueue(val T) error {
	if isAbsent(val) {
		return absentError(kindQueue, "enqueue")
	}
	q.list.pushBack(val)
	return nil
}

// Dequeue 出队
func (q *Queue[T]) Dequeue() (val T, err error) {
	if q.Empty() {
		return val, emptyError(kindQueue, "dequeue")
	}
	return q.list.popFront(), nil
}

// Peek 查看队首
func (q *Queue[T]) Peek() (val T, err error) {
	if q.Empty() {
		return val, emptyError(kindQueue, "peek")
	}
	return q.list.head.value, nil
}

// Add 等价 Enqueue
func (q *Queue[T]) Add(val T) error {
	return q.Enqueue(val)
}

// Remove 等价 Dequeue
func (q *Queue[T]) Remove() (T, error) {
	return q.Dequeue()
}
