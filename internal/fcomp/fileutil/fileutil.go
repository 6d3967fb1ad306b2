// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
)

// decompressedSuffix は拡張子から出力名を決められない場合に付ける拡張子
const decompressedSuffix = ".out"

var printer = message.NewPrinter(language.Japanese)

// ExpandPath は先頭の ~ をホームディレクトリに展開します
func ExpandPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExpandPath, path, err)
	}
	return expanded, nil
}

// HasSuffix は path が圧縮ファイルの拡張子を持つか判定します (大文字小文字は区別しない)
func HasSuffix(path, suffix string) bool {
	return suffix != "" && strings.EqualFold(filepath.Ext(path), suffix)
}

// DetectMode は入力ファイル名から圧縮・展開を判定します
func DetectMode(inputPath, suffix string) models.Mode {
	if HasSuffix(inputPath, suffix) {
		return models.ModeDecompress
	}
	return models.ModeCompress
}

// GenerateOutputFilename は入力ファイル名から出力ファイル名を生成します
//
//	圧縮: data.bin      -> data.bin.rle
//	展開: data.bin.rle  -> data.bin
//	展開: data.bin      -> data.bin.out
func GenerateOutputFilename(inputPath string, mode models.Mode, suffix string) string {
	if mode == models.ModeDecompress {
		if HasSuffix(inputPath, suffix) {
			trimmed := inputPath[:len(inputPath)-len(filepath.Ext(inputPath))]
			if trimmed != "" && !strings.HasSuffix(trimmed, string(filepath.Separator)) {
				return trimmed
			}
		}
		return inputPath + decompressedSuffix
	}
	return inputPath + suffix
}

// FormatBytes はバイト数を桁区切り付きで表示用に整形します
func FormatBytes(n int64) string {
	return printer.Sprintf("%v バイト", n)
}
