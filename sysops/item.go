package sysops

import (
	"fmt"
	"io/fs"
	"strings"
	"time"
)

var (
	// 断言 检查实现 Item
	_ Item = (*FileItem)(nil)
	_ Item = (*DirectoryItem)(nil)
)

// Item 文件系统条目
type Item interface {
	Name() string
	Size() int64
	ModTime() time.Time
	IsDir() bool
	String() string
}

// entry 条目公共字段
type entry struct {
	name    string
	size    int64
	modTime time.Time
}

// Name 名称
func (e *entry) Name() string {
	return e.name
}

// Size 字节数
func (e *entry) Size() int64 {
	return e.size
}

// ModTime 修改时间
func (e *entry) ModTime() time.Time {
	return e.modTime
}

// line 名称 大小 修改时间 对齐输出
func (e *entry) line() string {
	return fmt.Sprintf("%-20s %10d bytes  %s", e.name, e.size, e.modTime.Format(time.RFC1123))
}

// FileItem 普通文件
type FileItem struct {
	entry
	extension string
}

// NewFileItem 创建文件条目
func NewFileItem(name string, size int64, modTime time.Time) *FileItem {
	return &FileItem{
		entry:     entry{name: name, size: size, modTime: modTime},
		extension: Extension(name),
	}
}

// IsDir 文件不是目录
func (f *FileItem) IsDir() bool {
	return false
}

// Extension 文件扩展名 不含点
func (f *FileItem) Extension() string {
	return f.extension
}

// String 单行描述 带 [FILE] 标记
func (f *FileItem) String() string {
	return f.line() + " [FILE]"
}

// DirectoryItem 目录 大小记为 0 不递归统计
type DirectoryItem struct {
	entry
}

// NewDirectoryItem 创建目录条目
func NewDirectoryItem(name string, modTime time.Time) *DirectoryItem {
	return &DirectoryItem{
		entry: entry{name: name, modTime: modTime},
	}
}

// IsDir 总是目录
func (d *DirectoryItem) IsDir() bool {
	return true
}

// String 单行描述 带 [DIR] 标记
func (d *DirectoryItem) String() string {
	return d.line() + " [DIR]"
}

// newItem 根据文件信息创建条目
func newItem(info fs.FileInfo) Item {
	if info.IsDir() {
		return NewDirectoryItem(info.Name(), info.ModTime())
	}
	return NewFileItem(info.Name(), info.Size(), info.ModTime())
}

// Extension 取最后一个点之后的部分 点在开头(隐藏文件)时没有扩展名
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
