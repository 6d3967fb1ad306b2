package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiroemons/go-fcomp/internal/fcomp/config"
	apperrors "github.com/shiroemons/go-fcomp/internal/fcomp/errors"
	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// runCmd は新しいコマンドを args で実行し、標準出力とエラー出力を返します
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLegacyCompressAndUncompress(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.bin")
	compressed := filepath.Join(dir, "input.rle")
	restored := filepath.Join(dir, "restored.bin")
	original := []byte{0x01, 0x02, 0x02, 0x02}
	require.NoError(t, os.WriteFile(input, original, 0644))

	stdout, _, err := runCmd(t, "c", input, compressed)
	require.NoError(t, err)
	require.Contains(t, stdout, "ランレングス圧縮が完了しました")

	encoded, err := os.ReadFile(compressed)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x02, 0x00, 0x03}, encoded)

	stdout, _, err = runCmd(t, "u", compressed, restored)
	require.NoError(t, err)
	require.Contains(t, stdout, "ランレングス展開が完了しました")

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, original, got)
}

func TestAutoCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(input, bytes.Repeat([]byte{0x41}, 300), 0644))

	_, _, err := runCmd(t, "auto", "-q", input)
	require.NoError(t, err)

	encoded, err := os.ReadFile(input + ".rle")
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x41, 0x01, 0x2C}, encoded)

	// 出力ファイルが既にあるので --force なしでは失敗する
	_, _, err = runCmd(t, "auto", "-q", input+".rle")
	require.ErrorIs(t, err, apperrors.ErrOutputExists)

	_, _, err = runCmd(t, "auto", "-q", "--force", input+".rle")
	require.NoError(t, err)
}

func TestOverflowFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "zeros.bin")
	require.NoError(t, os.WriteFile(input, make([]byte, rle.MaxRunLength+1), 0644))

	_, _, err := runCmd(t, "compress", "--overflow", "reject", input)
	require.ErrorIs(t, err, rle.ErrRunTooLong)
	require.NoFileExists(t, input+".rle")

	_, _, err = runCmd(t, "compress", "--overflow", "split", "-q", input)
	require.NoError(t, err)
	encoded, err := os.ReadFile(input + ".rle")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0xFF, 0xFF, 0x00}, encoded)

	_, _, err = runCmd(t, "compress", "--overflow", "wrap", input, filepath.Join(dir, "other.rle"))
	require.Error(t, err)
}

func TestDebugFlagWritesToStderr(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(input, []byte{0x01}, 0644))

	_, stderr, err := runCmd(t, "compress", "-d", "-q", input)
	require.NoError(t, err)
	require.Contains(t, stderr, "入力ファイル")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"不明なオプション", []string{"x", "in", "out"}, apperrors.ErrInvalidMode},
		{"ファイル名のみ", []string{"input.bin"}, apperrors.ErrUsage},
		{"ファイル名2つ", []string{"in", "out"}, apperrors.ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, _, err := runCmd(t, "c")
	require.Error(t, err)
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCmd(t, "c", filepath.Join(dir, "missing.bin"), filepath.Join(dir, "out.rle"))
	require.ErrorIs(t, err, apperrors.ErrOpenInput)
	require.NoFileExists(t, filepath.Join(dir, "out.rle"))
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCmd(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, config.Version)

	stdout, _, err = runCmd(t, "--version")
	require.NoError(t, err)
	require.Contains(t, stdout, config.Version)
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name     string
		color    bool
		expected string
	}{
		{"端末以外はエスケープシーケンスなし", false, "エラー: 失敗しました\n"},
		{"端末では赤色", true, "\x1b[31mエラー:\x1b[0m 失敗しました\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			printError(buf, errors.New("失敗しました"), tt.color)
			require.Equal(t, tt.expected, buf.String())
		})
	}
}
