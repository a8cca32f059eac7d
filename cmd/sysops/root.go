package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frozenexplorer/PoPL-project/common/encode_utils"
	"github.com/frozenexplorer/PoPL-project/sysops"
)

// newRootCommand 构造根命令
func newRootCommand() *cobra.Command {
	v := viper.New()
	var (
		cfgFile   string
		execLines []string
	)
	cmd := &cobra.Command{
		Use:          "sysops [dir]",
		Short:        "Browse a directory with list, stack, deque and priority queue backed views",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := resolveSettings(v, args)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.LogLevel})))

			out, err := encode_utils.NewWriter(cmd.OutOrStdout(), s.Encoding)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := out.Close(); closeErr != nil && err == nil {
					err = errors.Wrap(closeErr, "close output")
				}
			}()
			browser, err := sysops.NewBrowser(afero.NewOsFs(), out, s.browserOptions()...)
			if err != nil {
				return err
			}
			if len(execLines) > 0 {
				browser.Run(execLines)
				return nil
			}
			if !strings.EqualFold(s.Encoding, encode_utils.EncodingUTF8) {
				slog.Warn("[SysOps] interactive prompt is not re-encoded", "encoding", s.Encoding)
			}
			return interactive(browser, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, flagConfig, "", "config file (default: configs/sysops.* or $HOME/sysops.*)")
	flags.String(flagDir, ".", "directory to start browsing in")
	flags.Int(flagHistorySize, sysops.DefaultHistorySize, "number of command lines kept in history")
	flags.String(flagLogLevel, "warn", "log level: debug, info, warn, error")
	flags.String(flagEncoding, encode_utils.EncodingUTF8, fmt.Sprintf("output encoding %v, the interactive prompt stays UTF-8", encode_utils.Supported()))
	flags.Bool(flagNoColor, false, "disable colored output")
	flags.StringArrayVarP(&execLines, flagExec, "e", nil, "run the command line non-interactively, repeatable")
	_ = v.BindPFlags(flags)

	return cmd
}

// interactive 交互模式 读到 EOF 或 Ctrl-C 时结束
// 命令输出按 --encoding 编码 提示符和行编辑由 liner 直接写终端 始终是 UTF-8
func interactive(browser *sysops.Browser, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Fprintln(out, "Welcome to SysOps CLI v2.0")
	fmt.Fprintln(out, "Type 'help' for commands.")
	for {
		fmt.Fprintln(out)
		input, err := line.Prompt(browser.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out, "Goodbye!")
				return nil
			}
			return errors.Wrap(err, "read command")
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if browser.Exec(input) {
			return nil
		}
	}
}
