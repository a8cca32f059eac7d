package sysops

import (
	"cmp"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/frozenexplorer/PoPL-project/common/container"
)

// commands 命令表 exit/quit 由 Exec 直接处理
func (b *Browser) commands() map[string]func(args []string) {
	return map[string]func(args []string){
		"ls":      b.list,
		"list":    b.list,
		"cd":      b.changeDirectory,
		"back":    b.back,
		"top":     b.top,
		"find":    b.find,
		"size_gt": func(args []string) { b.filterBySize(args, true) },
		"size_lt": func(args []string) { b.filterBySize(args, false) },
		"sort":    b.sort,
		"analyse": b.analyse,
		"analyze": b.analyse,
		"history": b.showHistory,
		"help":    func([]string) { b.renderHelp() },
	}
}

// list 列出当前目录
func (b *Browser) list([]string) {
	b.header("Listing contents of %s:", filepath.Base(b.dir))
	if b.renderItems(b.items.All()) == 0 {
		fmt.Fprintln(b.out, "(empty)")
	}
}

// changeDirectory 进入子目录 当前目录入栈
func (b *Browser) changeDirectory(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(b.out, "Usage: cd <dirname>")
		return
	}
	target := b.resolve(args[0])
	if ok, _ := afero.DirExists(b.fs, target); !ok {
		b.fail("Directory not found: %s", args[0])
		return
	}
	previous := b.dir
	if err := b.load(target); err != nil {
		slog.Warn("[Browser] changeDirectory load failed", slog.String("dir", target), slog.Any("err", err))
		b.fail("Failed to read directory: %s", args[0])
		return
	}
	_ = b.navigation.Push(previous)
	slog.Info("[Browser] changeDirectory", slog.String("from", previous), slog.String("to", target))
	fmt.Fprintf(b.out, "Entered directory: %s\n", args[0])
}

// back 回到上一个目录 导航栈为空时回到父目录
func (b *Browser) back([]string) {
	if previous, err := b.navigation.Pop(); err == nil {
		if err := b.load(previous); err != nil {
			slog.Warn("[Browser] back load failed", slog.String("dir", previous), slog.Any("err", err))
			b.fail("Failed to read directory: %s", previous)
			return
		}
		fmt.Fprintln(b.out, "Returned to parent directory.")
		return
	}

	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		fmt.Fprintln(b.out, "Already at system root.")
		return
	}
	if err := b.load(parent); err != nil {
		slog.Warn("[Browser] back load failed", slog.String("dir", parent), slog.Any("err", err))
		b.fail("Failed to read directory: %s", parent)
		return
	}
	fmt.Fprintln(b.out, "Returned to parent directory.")
}

// top 最大的 n 个文件 默认 1 个
func (b *Browser) top(args []string) {
	n := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			b.fail("Invalid count: %s", args[0])
			return
		}
		n = parsed
	}
	b.header("Top Largest Files (PriorityQueue):")
	largest, err := b.largest.Peek()
	if err != nil {
		fmt.Fprintln(b.out, "No files.")
		return
	}
	if n == 1 {
		fmt.Fprintf(b.out, "Largest: %s\n", largest)
		return
	}
	// 在副本上出队 不影响当前队列
	ranked := newLargestQueue()
	for file := range b.largest.All() {
		_ = ranked.Add(file)
	}
	for i := 1; i <= n; i++ {
		file, err := ranked.Remove()
		if err != nil {
			break
		}
		fmt.Fprintf(b.out, "%d. %s\n", i, file)
	}
}

// find 名称包含查询字符串的条目
func (b *Browser) find(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(b.out, "Usage: find <name>")
		return
	}
	query := args[0]
	b.header("Searching for '%s':", query)
	matched := b.renderItems(filter(b.items.All(), func(item Item) bool {
		return strings.Contains(item.Name(), query)
	}))
	if matched == 0 {
		fmt.Fprintln(b.out, "Not found.")
	}
}

// filterBySize 按大小过滤
func (b *Browser) filterBySize(args []string, greaterThan bool) {
	if len(args) < 1 {
		if greaterThan {
			fmt.Fprintln(b.out, "Usage: size_gt <bytes>")
		} else {
			fmt.Fprintln(b.out, "Usage: size_lt <bytes>")
		}
		return
	}
	limit, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.fail("Invalid size format.")
		return
	}
	op := "smaller"
	if greaterThan {
		op = "larger"
	}
	b.header("Files %s than %d bytes:", op, limit)
	b.renderItems(filter(b.items.All(), func(item Item) bool {
		if greaterThan {
			return item.Size() > limit
		}
		return item.Size() < limit
	}))
}

// sort 稳定排序当前视图
func (b *Browser) sort(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(b.out, "Usage: sort <name|size>")
		return
	}
	var compare func(x, y Item) int
	switch args[0] {
	case "name":
		compare = func(x, y Item) int { return strings.Compare(x.Name(), y.Name()) }
	case "size":
		compare = func(x, y Item) int { return cmp.Compare(x.Size(), y.Size()) }
	default:
		b.fail("Invalid sort criterion. Use 'name' or 'size'.")
		return
	}
	if err := b.items.Sort(compare); err != nil {
		slog.Error("[Browser] sort failed", slog.String("criterion", args[0]), slog.Any("err", err))
		return
	}
	fmt.Fprintf(b.out, "Sorted by %s.\n", args[0])
	b.list(nil)
}

// analyse 统计当前目录或指定目录
func (b *Browser) analyse(args []string) {
	items := b.items
	if len(args) < 1 {
		fmt.Fprintln(b.out, "Analyzing current directory...")
	} else {
		target := b.resolve(args[0])
		if ok, _ := afero.DirExists(b.fs, target); !ok {
			b.fail("Directory not found: %s", args[0])
			return
		}
		loaded, err := LoadDirectory(b.fs, target)
		if err != nil {
			slog.Warn("[Browser] analyse load failed", slog.String("dir", target), slog.Any("err", err))
			b.fail("Failed to read directory: %s", args[0])
			return
		}
		items = loaded
		fmt.Fprintf(b.out, "Analyzing %s...\n", args[0])
	}

	report := analyse(items)
	b.header("--- Analysis Report ---")
	fmt.Fprintf(b.out, "Files: %d\n", report.Files)
	fmt.Fprintf(b.out, "Directories: %d\n", report.Directories)
	fmt.Fprintf(b.out, "Total Size: %d bytes\n", report.TotalSize)
	fmt.Fprintf(b.out, "Average Size: %.2f bytes\n", report.AverageSize)
	fmt.Fprintf(b.out, "Max File Size: %d bytes\n", report.MaxSize)
	b.header("-----------------------")
}

// showHistory 输出命令历史
func (b *Browser) showHistory([]string) {
	b.header("Command History (Last %d):", b.cfg.HistorySize)
	for line := range b.history.All() {
		fmt.Fprintln(b.out, line)
	}
}

// Report 目录统计
type Report struct {
	Files       int
	Directories int
	TotalSize   int64
	AverageSize float64
	MaxSize     int64
}

// analyse 统计条目 平均值按全部条目计算
func analyse(items *container.List[Item]) Report {
	var report Report
	for item := range items.All() {
		if item.IsDir() {
			report.Directories++
		} else {
			report.Files++
		}
		report.TotalSize += item.Size()
		report.MaxSize = max(report.MaxSize, item.Size())
	}
	if count := items.Size(); count > 0 {
		report.AverageSize = float64(report.TotalSize) / float64(count)
	}
	return report
}
