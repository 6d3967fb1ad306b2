// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-fcomp/internal/fcomp/interfaces"
)

// MockFileSystem はテスト用のメモリ上のファイルシステムモック
type MockFileSystem struct {
	Files map[string][]byte

	OpenError   error
	CreateError error
	RenameError error
	// WriteError は作成した一時ファイルの Write が返すエラー
	WriteError error

	// Perms は Chmod で設定されたパーミッション
	Perms map[string]uint32

	// Temps は作成した一時ファイル
	Temps []*MockTempFile

	// Opened と Closed は開いた・閉じた入力ファイル名を記録します
	Opened []string
	Closed []string
	// Removed は削除したファイル名を記録します
	Removed []string

	tempCount int
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists
}

// Open はファイルを開きます
func (fs *MockFileSystem) Open(filename string) (io.ReadCloser, error) {
	if fs.OpenError != nil {
		return nil, fs.OpenError
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	fs.Opened = append(fs.Opened, filename)
	return &mockReadCloser{Reader: bytes.NewReader(data), onClose: func() {
		fs.Closed = append(fs.Closed, filename)
	}}, nil
}

// CreateTemp は一時ファイルを作成します。内容は Close 時に Files へ反映されます。
func (fs *MockFileSystem) CreateTemp(dir, pattern string) (interfaces.TempFile, error) {
	if fs.CreateError != nil {
		return nil, fs.CreateError
	}
	fs.tempCount++
	name := filepath.Join(dir, strings.Replace(pattern, "*", fmt.Sprint(fs.tempCount), 1))
	fs.Files[name] = nil
	tmp := &MockTempFile{name: name, fs: fs, WriteError: fs.WriteError}
	fs.Temps = append(fs.Temps, tmp)
	return tmp, nil
}

// Rename はファイル名を変更します
func (fs *MockFileSystem) Rename(oldpath, newpath string) error {
	if fs.RenameError != nil {
		return fs.RenameError
	}
	data, exists := fs.Files[oldpath]
	if !exists {
		return errors.New("file not found")
	}
	fs.Files[newpath] = data
	delete(fs.Files, oldpath)
	return nil
}

// Remove はファイルを削除します
func (fs *MockFileSystem) Remove(filename string) error {
	fs.Removed = append(fs.Removed, filename)
	if _, exists := fs.Files[filename]; !exists {
		return errors.New("file not found")
	}
	delete(fs.Files, filename)
	return nil
}

// Chmod はパーミッションを記録します
func (fs *MockFileSystem) Chmod(filename string, perm uint32) error {
	if _, exists := fs.Files[filename]; !exists {
		return errors.New("file not found")
	}
	if fs.Perms == nil {
		fs.Perms = make(map[string]uint32)
	}
	fs.Perms[filename] = perm
	return nil
}

// SameFile はパスを正規化して比較します
func (fs *MockFileSystem) SameFile(a, b string) bool {
	if !fs.FileExists(a) || !fs.FileExists(b) {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// MockTempFile はテスト用の一時ファイル
type MockTempFile struct {
	buf    bytes.Buffer
	name   string
	fs     *MockFileSystem
	closed bool

	// WriteError が設定されている場合 Write はこのエラーを返します
	WriteError error
}

// Name はファイル名を返します
func (f *MockTempFile) Name() string {
	return f.name
}

// IsClosed は Close が呼ばれたか返します
func (f *MockTempFile) IsClosed() bool {
	return f.closed
}

// Bytes は書き込まれた内容を返します
func (f *MockTempFile) Bytes() []byte {
	return f.buf.Bytes()
}

// Write はデータを書き込みます
func (f *MockTempFile) Write(p []byte) (int, error) {
	if f.WriteError != nil {
		return 0, f.WriteError
	}
	if f.closed {
		return 0, errors.New("write to closed file")
	}
	return f.buf.Write(p)
}

// Close は書き込んだ内容をファイルシステムに反映します
func (f *MockTempFile) Close() error {
	if f.closed {
		return errors.New("file already closed")
	}
	f.closed = true
	if _, exists := f.fs.Files[f.name]; exists {
		f.fs.Files[f.name] = bytes.Clone(f.buf.Bytes())
	}
	return nil
}

type mockReadCloser struct {
	*bytes.Reader
	onClose func()
}

func (r *mockReadCloser) Close() error {
	r.onClose()
	return nil
}
