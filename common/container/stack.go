package container

import (
	"iter"
	"slices"

	"github.com/frozenexplorer/PoPL-project/common/options"
)

const kindStack = "Stack"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Stack[int])(nil)
)

// Stack 栈 后进先出 线程不安全
// 底层 slice 尾部为栈顶 对外的逻辑顺序从栈顶开始
type Stack[T any] struct {
	data  []T
	equal func(a, b T) bool
}

// NewStack 创建栈
func NewStack[T any](opts ...options.Option[Options[T]]) *Stack[T] {
	opt := newOptions(opts)
	return &Stack[T]{
		data:  make([]T, 0, opt.capacity),
		equal: opt.equal,
	}
}

// Empty 判断栈是否为空
func (s *Stack[T]) Empty() bool {
	return len(s.data) == 0
}

// Size 获取栈大小
func (s *Stack[T]) Size() int {
	return len(s.data)
}

// Clear 清空栈
func (s *Stack[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

// Contains 判断是否包含某个值
func (s *Stack[T]) Contains(val T) bool {
	return slices.ContainsFunc(s.data, func(v T) bool {
		return s.equal(v, val)
	})
}

// Replace 替换元素 index 0 为栈顶
func (s *Stack[T]) Replace(index int, val T) error {
	if index < 0 || index >= len(s.data) {
		return indexError(kindStack, "replace", index, len(s.data))
	}
	if isAbsent(val) {
		return absentError(kindStack, "replace")
	}
	s.data[len(s.data)-1-index] = val
	return nil
}

// Value 获取栈数据 从栈顶到栈底
func (s *Stack[T]) Value() []T {
	values := slices.Clone(s.data)
	slices.Reverse(values)
	return values
}

// All 从栈顶到栈底迭代
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

// String 调试输出
func (s *Stack[T]) String() string {
	return format(kindStack, s.Size(), s.All())
}

// Push 入栈
func (s *Stack[T]) Push(val T) error {
	if isAbsent(val) {
		return absentError(kindStack, "push")
	}
	s.data = append(s.data, val)
	return nil
}

// Pop 出栈
func (s *Stack[T]) Pop() (val T, err error) {
	if s.Empty() {
		return val, emptyError(kindStack, "pop")
	}
	last := len(s.data) - 1
	val = s.data[last]
	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	return val, nil
}

// Peek 查看栈顶
func (s *Stack[T]) Peek() (val T, err error) {
	if s.Empty() {
		return val, emptyError(kindStack, "peek")
	}
	return s.data[len(s.data)-1], nil
}

// Add 等价 Push
func (s *Stack[T]) Add(val T) error {
	return s.Push(val)
}

// Remove 等价 Pop
func (s *Stack[T]) Remove() (T, error) {
	return s.Pop()
}
