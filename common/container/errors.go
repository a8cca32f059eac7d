package container

import "github.com/cockroachdb/errors"

var (
	// ErrAbsentValue 插入了缺失值(nil)
	ErrAbsentValue = errors.New("absent value")
	// ErrEmpty 容器为空
	ErrEmpty = errors.New("container is empty")
	// ErrIndexOutOfRange 下标越界
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoOrdering 排序时没有提供比较函数
	ErrNoOrdering = errors.New("ordering unavailable")
)

// emptyError 空容器错误 附带操作信息
func emptyError(kind, op string) error {
	return errors.Wrapf(ErrEmpty, "%s from empty %s", op, kind)
}

// indexError 越界错误 附带下标和合法范围
func indexError(kind, op string, index, limit int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s %s index %d, valid [0, %d)", kind, op, index, limit)
}

// absentError 缺失值错误
func absentError(kind, op string) error {
	return errors.Wrapf(ErrAbsentValue, "%s %s", kind, op)
}
