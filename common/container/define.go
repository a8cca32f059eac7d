package container

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Container 容器接口
// 所有容器共享的能力集合 Add/Remove/Peek 的语义由具体容器决定
type Container[T any] interface {
	// Size 元素个数
	Size() int
	// Empty 是否为空
	Empty() bool
	// Clear 清空容器 已取出的元素不受影响
	Clear()
	// Contains 线性扫描判断是否包含
	Contains(val T) bool
	// Replace 替换逻辑位置 index 上的元素 不移动其他元素
	Replace(index int, val T) error
	// Add 按容器策略插入
	Add(val T) error
	// Remove 按容器策略移除并返回
	Remove() (T, error)
	// Peek 按容器策略查看 不移除
	Peek() (T, error)
	// Value 按容器顺序拷贝出所有元素
	Value() []T
	// All 按容器顺序只读遍历
	All() iter.Seq[T]
	// String 调试输出 类型名(size=n) [元素...]
	String() string
}

// isAbsent 判断是否是缺失值
// 只有可为 nil 的类型才可能缺失 值类型永远不会缺失
func isAbsent[T any](val T) bool {
	rv := reflect.ValueOf(any(val))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// defaultEqual 默认相等判断
func defaultEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// format 统一的调试输出
func format[T any](name string, size int, seq iter.Seq[T]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(size=%d) [", name, size)
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
