// Package models はfcompコマンドで使用するデータモデルを定義します
package models

import (
	"fmt"
	"strings"

	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// Mode は処理の種類を表します
type Mode int

const (
	// ModeUnknown は未指定
	ModeUnknown Mode = iota
	// ModeCompress は圧縮
	ModeCompress
	// ModeDecompress は展開
	ModeDecompress
	// ModeAuto は入力ファイル名から自動判定
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode はコマンド文字列から Mode を取得します。
// 旧コマンドとの互換のため "c" と "u" も受け付けます。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "compress":
		return ModeCompress, nil
	case "u", "d", "decompress", "uncompress":
		return ModeDecompress, nil
	case "a", "auto":
		return ModeAuto, nil
	default:
		return ModeUnknown, fmt.Errorf("unknown mode %q", s)
	}
}

// Job は1回の圧縮・展開の依頼です
type Job struct {
	Mode       Mode
	InputPath  string
	OutputPath string // 空の場合は入力ファイル名から生成
}

// Result は処理結果です
type Result struct {
	Mode       Mode
	InputPath  string
	OutputPath string
	Stats      rle.Stats
}
