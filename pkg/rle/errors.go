package rle

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedStream はロング形式ユニットの途中で入力が終わった場合のエラー
	ErrTruncatedStream = errors.New("rle: truncated stream")

	// ErrRunTooLong は OverflowReject でラン長が上限を超えた場合のエラー
	ErrRunTooLong = errors.New("rle: run too long")
)

// FormatError は符号化データの不正を表します
type FormatError struct {
	Offset int64 // 不正なユニットの開始位置 (入力の先頭からのバイト数)
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap は元のエラーを返します
func (e *FormatError) Unwrap() error {
	return e.Err
}

// RunError は符号化できないランを表します
type RunError struct {
	Value  byte
	Length int64
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%v: value 0x%02X repeated %d times (max %d)", e.Err, e.Value, e.Length, MaxRunLength)
}

// Unwrap は元のエラーを返します
func (e *RunError) Unwrap() error {
	return e.Err
}
