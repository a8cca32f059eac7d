package container

import "github.com/frozenexplorer/PoPL-project/common/options"

// Options 容器构造参数
type Options[T any] struct {
	capacity int               // 初始容量 链表容器忽略
	equal    func(a, b T) bool // Contains 使用的相等判断
}

// newOptions 默认参数 + 自定义参数
func newOptions[T any](opts []options.Option[Options[T]]) *Options[T] {
	opt := options.Apply(&Options[T]{
		capacity: initCapacity,
		equal:    defaultEqual[T],
	}, opts...)
	if opt.capacity < 0 {
		opt.capacity = 0
	}
	if opt.equal == nil {
		opt.equal = defaultEqual[T]
	}
	return opt
}

// WithCapacity 设置初始容量
func WithCapacity[T any](capacity int) options.Option[Options[T]] {
	return options.WrapperOptions[Options[T]](func(opt *Options[T]) {
		opt.capacity = capacity
	})
}

// WithEqual 设置 Contains 使用的相等判断
func WithEqual[T any](equal func(a, b T) bool) options.Option[Options[T]] {
	return options.WrapperOptions[Options[T]](func(opt *Options[T]) {
		opt.equal = equal
	})
}
