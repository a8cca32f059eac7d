package sysops

import "github.com/frozenexplorer/PoPL-project/common/options"

const (
	// DefaultHistorySize 默认保留的命令历史条数
	DefaultHistorySize = 10
)

// Option 浏览器构造参数
type Option = options.Option[Config]

// Config 浏览器配置
type Config struct {
	Dir         string // 起始目录
	HistorySize int    // 命令历史条数
	NoColor     bool   // 关闭颜色输出
}

// WithDir 设置起始目录
func WithDir(dir string) Option {
	return options.WrapperOptions[Config](func(c *Config) {
		c.Dir = dir
	})
}

// WithHistorySize 设置命令历史条数 小于 1 时使用默认值
func WithHistorySize(size int) Option {
	return options.WrapperOptions[Config](func(c *Config) {
		c.HistorySize = size
	})
}

// WithNoColor 关闭颜色输出
func WithNoColor(noColor bool) Option {
	return options.WrapperOptions[Config](func(c *Config) {
		c.NoColor = noColor
	})
}

// newConfig 默认配置 + 自定义配置
func newConfig(opts []Option) *Config {
	cfg := options.Apply(&Config{
		Dir:         ".",
		HistorySize: DefaultHistorySize,
	}, opts...)
	if cfg.HistorySize < 1 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return cfg
}
