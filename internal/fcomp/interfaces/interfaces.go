// Package interfaces はfcompコマンドで使用するインターフェースを定義します
package interfaces

import (
	"io"

	"github.com/shiroemons/go-fcomp/internal/fcomp/models"
	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	Open(filename string) (io.ReadCloser, error)
	CreateTemp(dir, pattern string) (TempFile, error)
	Rename(oldpath, newpath string) error
	Remove(filename string) error
	Chmod(filename string, perm uint32) error
	SameFile(a, b string) bool
}

// TempFile は書き込み用の一時ファイルのインターフェース
type TempFile interface {
	io.WriteCloser
	Name() string
}

// Codec はストリームを圧縮・展開するインターフェース
type Codec interface {
	Compress(src io.Reader, dst io.Writer) (rle.Stats, error)
	Decompress(src io.Reader, dst io.Writer) (rle.Stats, error)
}

// Prompter は対話モードで処理内容を入力させるインターフェース
type Prompter interface {
	Prompt() (models.Job, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
