package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/frozenexplorer/PoPL-project/common/encode_utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.txt"), make([]byte, 10), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "large.bin"), make([]byte, 2048), 0o644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootExec(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := newTestDir(t)

	out, err := execute(t, dir, "--no-color", "-e", "ls", "-e", "top", "-e", "cd sub", "-e", "history")
	require.NoError(t, err)
	require.Contains(t, out, "small.txt")
	require.Contains(t, out, "Largest: large.bin")
	require.Contains(t, out, "Entered directory: sub")
	require.Contains(t, out, "Command History (Last 10):")
}

func TestRootExecDirFlag(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := newTestDir(t)

	out, err := execute(t, "--dir", dir, "--no-color", "--history-size", "2", "-e", "ls", "-e", "top", "-e", "history")
	require.NoError(t, err)
	require.Contains(t, out, "Command History (Last 2):\ntop\nhistory\n")
}

func TestRootExecEncoding(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := newTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo😀.jpg"), make([]byte, 4096), 0o644))

	out, err := execute(t, dir, "--no-color", "--encoding", "gbk", "-e", "ls", "-e", "top")
	require.NoError(t, err)
	text, err := encode_utils.NewDecoder(encode_utils.EncodingGBK).String(out)
	require.NoError(t, err)
	require.Contains(t, text, "small.txt")
	require.Contains(t, text, "Largest: photo\x1a.jpg")
	require.NotContains(t, text, "😀")
}

func TestRootInvalidSettings(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := newTestDir(t)

	_, err := execute(t, dir, "--encoding", "EBCDIC", "-e", "ls")
	require.ErrorContains(t, err, "unsupported encoding")

	_, err = execute(t, dir, "--log-level", "loud", "-e", "ls")
	require.ErrorContains(t, err, "invalid log-level")

	_, err = execute(t, dir, "--history-size", "0", "-e", "ls")
	require.ErrorContains(t, err, "history-size must be positive")

	_, err = execute(t, filepath.Join(dir, "missing"), "-e", "ls")
	require.ErrorContains(t, err, "read directory")
}

func TestRootConfigFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := newTestDir(t)
	cfg := filepath.Join(t.TempDir(), "sysops.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("dir: "+dir+"\nhistory-size: 1\nno-color: true\n"), 0o644))

	out, err := execute(t, "--config", cfg, "-e", "top", "-e", "history")
	require.NoError(t, err)
	require.Contains(t, out, "Largest: large.bin")
	require.Contains(t, out, "Command History (Last 1):\nhistory\n")

	_, err = execute(t, "--config", filepath.Join(dir, "absent.yaml"), "-e", "ls")
	require.ErrorContains(t, err, "read config")
}

func TestResolveSettingsFromEnv(t *testing.T) {
	t.Setenv("SYSOPS_HISTORY_SIZE", "4")
	t.Setenv("SYSOPS_ENCODING", "gbk")

	v := viper.New()
	require.NoError(t, initConfig(v, ""))
	v.SetDefault(flagDir, ".")
	v.SetDefault(flagLogLevel, "info")

	s, err := resolveSettings(v, []string{"/tmp"})
	require.NoError(t, err)
	require.Equal(t, "/tmp", s.Dir)
	require.Equal(t, 4, s.HistorySize)
	require.Equal(t, "gbk", s.Encoding)
	require.Equal(t, slog.LevelInfo, s.LogLevel)
}
