package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/frozenexplorer/PoPL-project/common/encode_utils"
	"github.com/frozenexplorer/PoPL-project/sysops"
)

const (
	configName = "sysops"
	envPrefix  = "SYSOPS"

	flagConfig      = "config"
	flagDir         = "dir"
	flagHistorySize = "history-size"
	flagLogLevel    = "log-level"
	flagEncoding    = "encoding"
	flagNoColor     = "no-color"
	flagExec        = "exec"
)

// settings 解析后的程序配置
type settings struct {
	Dir         string
	HistorySize int
	LogLevel    slog.Level
	Encoding    string
	NoColor     bool
}

// initConfig 读取配置文件和环境变量
// 未指定配置文件且默认路径找不到时忽略
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrapf(err, "read config %s", cfgFile)
	}
	slog.Debug("[Config] initConfig", slog.String("file", v.ConfigFileUsed()))
	return nil
}

// resolveSettings 合并参数 位置参数优先于 --dir
func resolveSettings(v *viper.Viper, args []string) (settings, error) {
	s := settings{
		Dir:         v.GetString(flagDir),
		HistorySize: v.GetInt(flagHistorySize),
		Encoding:    v.GetString(flagEncoding),
		NoColor:     v.GetBool(flagNoColor),
	}
	if len(args) > 0 {
		s.Dir = args[0]
	}
	if s.HistorySize < 1 {
		return s, errors.Newf("%s must be positive, got %d", flagHistorySize, s.HistorySize)
	}
	if err := s.LogLevel.UnmarshalText([]byte(v.GetString(flagLogLevel))); err != nil {
		return s, errors.Wrapf(err, "invalid %s", flagLogLevel)
	}
	if encode_utils.NewEncoder(s.Encoding) == nil {
		return s, errors.Newf("unsupported %s %q, supported %v", flagEncoding, s.Encoding, encode_utils.Supported())
	}
	return s, nil
}

// browserOptions 转换为浏览器参数
func (s settings) browserOptions() []sysops.Option {
	return []sysops.Option{
		sysops.WithDir(s.Dir),
		sysops.WithHistorySize(s.HistorySize),
		sysops.WithNoColor(s.NoColor),
	}
}
