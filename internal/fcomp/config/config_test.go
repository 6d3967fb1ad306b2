package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiroemons/go-fcomp/pkg/rle"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(`overflow: reject
suffix: .fc
debug: true
force: true
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "reject", cfg.Overflow)
	require.Equal(t, ".fc", cfg.Suffix)
	require.True(t, cfg.Debug)
	require.True(t, cfg.Force)
	require.False(t, cfg.Quiet)
	require.Equal(t, path, cfg.Path())

	policy, err := cfg.OverflowPolicy()
	require.NoError(t, err)
	require.Equal(t, rle.OverflowReject, policy)
	require.NoError(t, cfg.Validate())
}

func TestReadConfig_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "split", cfg.Overflow)
	require.Equal(t, DefaultSuffix, cfg.Suffix)
}

func TestReadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.yaml")
	_, err := ReadConfig(path)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), path)

	// 原因のエラーが保持されていること
	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, "stat", pathErr.Op)
}

func TestReadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overflow: [split\n"), 0644))

	_, err := ReadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Overflow = "wrap"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Suffix = "rle"
	require.Error(t, cfg.Validate())
}

func TestDebugLogger(t *testing.T) {
	var buf bytes.Buffer

	// デバッグモード有効
	logger := NewDebugLoggerWithWriter(true, &buf)
	logger.Printf("test message %d\n", 123)
	require.Contains(t, buf.String(), "test message 123")

	// デバッグモード無効
	buf.Reset()
	logger = NewDebugLoggerWithWriter(false, &buf)
	logger.Printf("should not appear\n")
	require.Empty(t, buf.String())
}
