package fileutil

import (
	"io"
	"os"

	"github.com/shiroemons/go-fcomp/internal/fcomp/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// Open はファイルを読み込み専用で開きます
func (fs *OSFileSystem) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

// CreateTemp は dir に一時ファイルを作成します
func (fs *OSFileSystem) CreateTemp(dir, pattern string) (interfaces.TempFile, error) {
	return os.CreateTemp(dir, pattern)
}

// Rename はファイル名を変更します
func (fs *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove はファイルを削除します
func (fs *OSFileSystem) Remove(filename string) error {
	return os.Remove(filename)
}

// Chmod はファイルのパーミッションを変更します
func (fs *OSFileSystem) Chmod(filename string, perm uint32) error {
	return os.Chmod(filename, os.FileMode(perm))
}

// SameFile は a と b が同じファイルを指すか確認します。どちらかが存在しない場合は false です。
func (fs *OSFileSystem) SameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
