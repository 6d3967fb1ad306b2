// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrOpenInput は入力ファイルを開けない場合のエラー
	ErrOpenInput = errors.New("入力ファイルを開けませんでした")

	// ErrCreateOutput は出力ファイルを作成できない場合のエラー
	ErrCreateOutput = errors.New("出力ファイルを作成できませんでした")

	// ErrOutputExists は出力ファイルが既に存在する場合のエラー
	ErrOutputExists = errors.New("出力ファイルが既に存在します。上書きする場合は --force を指定してください")

	// ErrSameFile は入力と出力が同じファイルの場合のエラー
	ErrSameFile = errors.New("入力ファイルと出力ファイルが同じです")

	// ErrInvalidMode は圧縮・展開の指定が不正な場合のエラー
	ErrInvalidMode = errors.New("圧縮オプションが正しくありません")

	// ErrUsage はコマンドライン引数が不正な場合のエラー
	ErrUsage = errors.New("USAGE: fcomp {c,u} infile outfile")

	// ErrCancelled はユーザーが入力を中断した場合のエラー
	ErrCancelled = errors.New("入力が中断されました")

	// ErrCodec は圧縮・展開処理に失敗した場合のエラー
	ErrCodec = errors.New("ランレングス処理に失敗しました")
)

// FileError はファイル操作のエラー
type FileError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError は新しいFileErrorを作成します
func NewFileError(op, path string, err error) *FileError {
	return &FileError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
