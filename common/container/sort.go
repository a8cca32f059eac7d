package container

import "cmp"

// Sort 稳定归并排序 O(nlogn) 时间 O(n) 额外空间
// compare 为 nil 时返回 ErrNoOrdering 列表不变
func (l *List[T]) Sort(compare func(a, b T) int) error {
	if compare == nil {
		return ErrNoOrdering
	}
	if len(l.data) <= 1 {
		return nil
	}
	// 辅助缓冲区只分配一次
	tmp := make([]T, len(l.data))
	mergeSort(l.data, tmp, 0, len(l.data)-1, compare)
	return nil
}

// SortOrdered 按自然顺序排序
func SortOrdered[T cmp.Ordered](l *List[T]) {
	// cmp.Compare 不为 nil 不会出错
	_ = l.Sort(cmp.Compare[T])
}

// mergeSort 对闭区间 [left, right] 递归排序
func mergeSort[T any](data, tmp []T, left, right int, compare func(a, b T) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, tmp, left, mid, compare)
	mergeSort(data, tmp, mid+1, right, compare)
	merge(data, tmp, left, mid, right, compare)
}

// merge 合并 [left, mid] 与 [mid+1, right]
// 相等时优先取左半部分 保证稳定
func merge[T any](data, tmp []T, left, mid, right int, compare func(a, b T) int) {
	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		if compare(data[i], data[j]) <= 0 {
			tmp[k] = data[i]
			i++
		} else {
			tmp[k] = data[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], data[i:mid+1])
	copy(tmp[k:], data[j:right+1])
	copy(data[left:right+1], tmp[left:right+1])
}
