package container

import (
	"iter"

	"github.com/frozenexplorer/PoPL-project/common/options"
)

const kindDeque = "Deque"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Deque[int])(nil)
)

// Deque 双端队列 线程不安全
// 两端插入删除都是 O(1)
// 作为 Container 使用时 Add/Remove/Peek 退化为先进先出
type Deque[T any] struct {
	list  linkedList[T]
	equal func(a, b T) bool
}

// NewDeque 创建双端队列
func NewDeque[T any](opts ...options.Option[Options[T]]) *Deque[T] {
	opt := newOptions(opts)
	return &Deque[T]{
		equal: opt.equal,
	}
}

// Empty 判断是否为空
func (d *Deque[T]) Empty() bool {
	return d.list.size == 0
}

// Size 元素个数
func (d *Deque[T]) Size() int {
	return d.list.size
}

// Clear 清空双端队列
func (d *Deque[T]) Clear() {
	d.list.clear()
}

// Contains 判断是否包含某个值
func (d *Deque[T]) Contains(val T) bool {
	return d.list.contains(val, d.equal)
}

// Replace 替换元素 index 0 为头部
func (d *Deque[T]) Replace(index int, val T) error {
	if index < 0 || index >= d.list.size {
		return indexError(kindDeque, "replace", index, d.list.size)
	}
	if isAbsent(val) {
		return absentError(kindDeque, "replace")
	}
	d.list.at(index).value = val
	return nil
}

// Value 头到尾拷贝
func (d *Deque[T]) Value() []T {
	return d.list.values()
}

// All 头到尾迭代
func (d *Deque[T]) All() iter.Seq[T] {
	return d.list.all()
}

// String 调试输出
func (d *Deque[T]) String() string {
	return format(kindDeque, d.Size(), d.All())
}

// AddFirst 头部插入
func (d *Deque[T]) AddFirst(val T) error {
	if isAbsent(val) {
		return absentError(kindDeque, "addFirst")
	}
	d.list.pushFront(val)
	return nil
}

// AddLast 尾部插入
func (d *Deque[T]) AddLast(val T) error {
	if isAbsent(val) {
		return absentError(kindDeque, "addLast")
	}
	d.list.pushBack(val)
	return nil
}

// RemoveFirst 移除头部
func (d *Deque[T]) RemoveFirst() (val T, err error) {
	if d.Empty() {
		return val, emptyError(kindDeque, "removeFirst")
	}
	return d.list.popFront(), nil
}

// RemoveLast 移除尾部
func (d *Deque[T]) RemoveLast() (val T, err error) {
	if d.Empty() {
		return val, emptyError(kindDeque, "removeLast")
	}
	return d.list.popBack(), nil
}

// PeekFirst 查看头部
func (d *Deque[T]) PeekFirst() (val T, err error) {
	if d.Empty() {
		return val, emptyError(kindDeque, "peekFirst")
	}
	return d.list.head.value, nil
}

// PeekLast 查看尾部
func (d *Deque[T]) PeekLast() (val T, err error) {
	if d.Empty() {
		return val, emptyError(kindDeque, "peekLast")
	}
	return d.list.tail.value, nil
}

// Add 等价 AddLast
func (d *Deque[T]) Add(val T) error {
	return d.AddLast(val)
}

// Remove 等价 RemoveFirst
func (d *Deque[T]) Remove() (T, error) {
	return d.RemoveFirst()
}

// Peek 等价 PeekFirst
func (d *Deque[T]) Peek() (T, error) {
	return d.PeekFirst()
}
