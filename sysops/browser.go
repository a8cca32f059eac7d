package sysops

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/frozenexplorer/PoPL-project/common/container"
)

// Browser 文件浏览器 线程不安全 一个会话一个实例
type Browser struct {
	fs          afero.Fs
	out         io.Writer
	cfg         *Config
	dir         string                              // 当前目录 绝对路径
	items       *container.List[Item]               // 当前目录视图
	navigation  *container.Stack[string]            // 导航历史
	history     *container.Deque[string]            // 命令历史
	largest     *container.PriorityQueue[*FileItem] // 当前视图中的文件 大的优先
	pending     *container.Queue[string]            // 待执行的脚本命令
	handlers    map[string]func(args []string)      // 命令处理
	headerColor *color.Color                        // 标题颜色
	errColor    *color.Color                        // 错误颜色
}

// NewBrowser 创建浏览器并加载起始目录
func NewBrowser(fsys afero.Fs, out io.Writer, opts ...Option) (*Browser, error) {
	cfg := newConfig(opts)
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", cfg.Dir)
	}
	b := &Browser{
		fs:          fsys,
		out:         out,
		cfg:         cfg,
		navigation:  container.NewStack[string](),
		history:     container.NewDeque[string](),
		pending:     container.NewQueue[string](),
		headerColor: color.New(color.FgCyan, color.Bold),
		errColor:    color.New(color.FgRed),
	}
	if cfg.NoColor {
		b.headerColor.DisableColor()
		b.errColor.DisableColor()
	}
	b.handlers = b.commands()
	if err := b.load(dir); err != nil {
		return nil, err
	}
	slog.Info("[Browser] NewBrowser", slog.String("dir", dir), slog.Int("historySize", cfg.HistorySize))
	return b, nil
}

// Dir 当前目录
func (b *Browser) Dir() string {
	return b.dir
}

// Prompt 交互提示符
func (b *Browser) Prompt() string {
	return b.dir + "> "
}

// History 命令历史 旧到新
func (b *Browser) History() []string {
	return b.history.Value()
}

// Items 当前视图的拷贝
func (b *Browser) Items() []Item {
	return b.items.Value()
}

// Exec 执行一行命令 返回是否结束会话
func (b *Browser) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	b.remember(line)

	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	switch command {
	case "exit", "quit":
		fmt.Fprintln(b.out, "Goodbye!")
		return true
	}
	handler, ok := b.handlers[command]
	if !ok {
		fmt.Fprintln(b.out, "Unknown command.")
		return false
	}
	handler(parts[1:])
	return false
}

// Run 按顺序执行脚本命令 遇到 exit 或执行完毕后返回
func (b *Browser) Run(lines []string) {
	for _, line := range lines {
		// 空行在入队时丢弃
		if strings.TrimSpace(line) == "" {
			continue
		}
		_ = b.pending.Enqueue(line)
	}
	for !b.pending.Empty() {
		line, err := b.pending.Dequeue()
		if err != nil {
			return
		}
		fmt.Fprintf(b.out, "\n%s%s\n", b.Prompt(), line)
		if b.Exec(line) {
			b.pending.Clear()
			return
		}
	}
}

// remember 记录命令历史 超出上限丢弃最旧的
func (b *Browser) remember(line string) {
	_ = b.history.AddLast(line)
	for b.history.Size() > b.cfg.HistorySize {
		_, _ = b.history.RemoveFirst()
	}
}

// load 加载目录并刷新视图
func (b *Browser) load(dir string) error {
	items, err := LoadDirectory(b.fs, dir)
	if err != nil {
		return err
	}
	b.dir = dir
	b.items = items
	b.refreshLargest()
	return nil
}

// refreshLargest 根据当前视图重建最大文件优先队列
func (b *Browser) refreshLargest() {
	b.largest = newLargestQueue()
	for item := range b.items.All() {
		if file, ok := item.(*FileItem); ok {
			_ = b.largest.Add(file)
		}
	}
}

// newLargestQueue 按大小降序的优先队列
func newLargestQueue() *container.PriorityQueue[*FileItem] {
	return container.NewPriorityQueue(func(a, b *FileItem) int {
		return cmp.Compare(b.Size(), a.Size())
	})
}

// resolve 解析相对当前目录的路径
func (b *Browser) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(b.dir, path)
}
