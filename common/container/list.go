package container

import (
	"iter"
	"slices"

	"github.com/frozenexplorer/PoPL-project/common/options"
)

const (
	// 初始化容量
	initCapacity = 8

	kindList = "List"
)

var (
	// 断言 检查实现 Container
	_ Container[int] = (*List[int])(nil)
)

// List 可变长列表 线程不安全
// 底层采用 slice 支持任意位置插入删除以及稳定排序
type List[T any] struct {
	data  []T
	equal func(a, b T) bool
}

// NewList 创建列表
func NewList[T any](opts ...options.Option[Options[T]]) *List[T] {
	opt := newOptions(opts)
	return &List[T]{
		data:  make([]T, 0, opt.capacity),
		equal: opt.equal,
	}
}

// Empty 判断列表是否为空
func (l *List[T]) Empty() bool {
	return len(l.data) == 0
}

// Size 获取列表长度
func (l *List[T]) Size() int {
	return len(l.data)
}

// Clear 清空列表
func (l *List[T]) Clear() {
	clear(l.data)
	l.data = l.data[:0]
}

// Contains 判断是否包含某个值
func (l *List[T]) Contains(val T) bool {
	return slices.ContainsFunc(l.data, func(v T) bool {
		return l.equal(v, val)
	})
}

// Replace 替换下标位置的元素
func (l *List[T]) Replace(index int, val T) error {
	if index < 0 || index >= len(l.data) {
		return indexError(kindList, "replace", index, len(l.data))
	}
	if isAbsent(val) {
		return absentError(kindList, "replace")
	}
	l.data[index] = val
	return nil
}

// Value 获取列表数据 返回拷贝
func (l *List[T]) Value() []T {
	return slices.Clone(l.data)
}

// All 顺序迭代
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(l.data); i++ {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}

// String 调试输出
func (l *List[T]) String() string {
	return format(kindList, l.Size(), l.All())
}

// Add 尾部追加 等价 AddLast
func (l *List[T]) Add(val T) error {
	if isAbsent(val) {
		return absentError(kindList, "add")
	}
	l.data = append(l.data, val)
	return nil
}

// AddLast 尾部追加
func (l *List[T]) AddLast(val T) error {
	return l.Add(val)
}

// AddFirst 头部插入
func (l *List[T]) AddFirst(val T) error {
	if isAbsent(val) {
		return absentError(kindList, "addFirst")
	}
	l.data = slices.Insert(l.data, 0, val)
	return nil
}

// AddAt 在 index 位置插入 合法范围 [0, size]
func (l *List[T]) AddAt(index int, val T) error {
	if index < 0 || index > len(l.data) {
		return indexError(kindList, "addAt", index, len(l.data)+1)
	}
	if isAbsent(val) {
		return absentError(kindList, "addAt")
	}
	l.data = slices.Insert(l.data, index, val)
	return nil
}

// Remove 移除尾部元素 等价 RemoveLast
func (l *List[T]) Remove() (val T, err error) {
	if l.Empty() {
		return val, emptyError(kindList, "remove")
	}
	return l.removeAt(len(l.data) - 1), nil
}

// RemoveLast 移除尾部元素
func (l *List[T]) RemoveLast() (T, error) {
	return l.Remove()
}

// RemoveFirst 移除头部元素
func (l *List[T]) RemoveFirst() (val T, err error) {
	if l.Empty() {
		return val, emptyError(kindList, "removeFirst")
	}
	return l.removeAt(0), nil
}

// RemoveAt 移除下标位置的元素 合法范围 [0, size)
func (l *List[T]) RemoveAt(index int) (val T, err error) {
	if index < 0 || index >= len(l.data) {
		return val, indexError(kindList, "removeAt", index, len(l.data))
	}
	return l.removeAt(index), nil
}

// removeAt 移除并清零尾部空位 调用方保证下标合法
func (l *List[T]) removeAt(index int) T {
	val := l.data[index]
	last := len(l.data) - 1
	copy(l.data[index:], l.data[index+1:])
	var zero T
	l.data[last] = zero
	l.data = l.data[:last]
	return val
}

// Get 获取下标位置的元素
func (l *List[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= len(l.data) {
		return val, indexError(kindList, "get", index, len(l.data))
	}
	return l.data[index], nil
}

// Peek 查看尾部元素
func (l *List[T]) Peek() (val T, err error) {
	if l.Empty() {
		return val, emptyError(kindList, "peek")
	}
	return l.data[len(l.data)-1], nil
}
