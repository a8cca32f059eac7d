package container

import "iter"

// node 双向链表节点
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// linkedList 双向链表 Queue/Deque 的底层存储
// 每个容器独占一条链 不对外暴露节点
type linkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// pushFront 头部插入
func (l *linkedList[T]) pushFront(val T) {
	n := &node[T]{value: val, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// pushBack 尾部插入
func (l *linkedList[T]) pushBack(val T) {
	n := &node[T]{value: val, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// popFront 头部移除 调用方保证非空
func (l *linkedList[T]) popFront() T {
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.size--
	// 断开引用 便于回收
	n.next = nil
	return n.value
}

// popBack 尾部移除 调用方保证非空
func (l *linkedList[T]) popBack() T {
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.size--
	n.prev = nil
	return n.value
}

// at 获取下标对应节点 从较近的一端开始遍历 调用方保证下标合法
func (l *linkedList[T]) at(index int) *node[T] {
	if index < l.size/2 {
		cursor := l.head
		for i := 0; i < index; i++ {
			cursor = cursor.next
		}
		return cursor
	}
	cursor := l.tail
	for i := l.size - 1; i > index; i-- {
		cursor = cursor.prev
	}
	return cursor
}

// clear 清空
func (l *linkedList[T]) clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// contains 线性查找
func (l *linkedList[T]) contains(val T, equal func(a, b T) bool) bool {
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		if equal(cursor.value, val) {
			return true
		}
	}
	return false
}

// values 拷贝所有值 头到尾
func (l *linkedList[T]) values() []T {
	values := make([]T, 0, l.size)
	for cursor := l.head; cursor != nil; cursor = cursor.next {
		values = append(values, cursor.value)
	}
	return values
}

// all 头到尾迭代
func (l *linkedList[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cursor := l.head; cursor != nil; cursor = cursor.next {
			if !yield(cursor.value) {
				return
			}
		}
	}
}
