package fileutil

import "errors"

var (
	// ErrEmptyPath はファイル名が空の場合のエラー
	ErrEmptyPath = errors.New("ファイル名が指定されていません")

	// ErrExpandPath はホームディレクトリの展開に失敗した場合のエラー
	ErrExpandPath = errors.New("パスのホームディレクトリを展開できませんでした")
)
