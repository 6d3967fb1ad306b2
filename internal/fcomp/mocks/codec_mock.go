package mocks

import (
	"io"

	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// MockCodec はテスト用のコーデックモック
type MockCodec struct {
	CompressFunc   func(src io.Reader, dst io.Writer) (rle.Stats, error)
	DecompressFunc func(src io.Reader, dst io.Writer) (rle.Stats, error)

	CompressCalls   int
	DecompressCalls int
}

// Compress はモックの圧縮処理を実行します。未設定の場合は入力をそのまま書き込みます。
func (m *MockCodec) Compress(src io.Reader, dst io.Writer) (rle.Stats, error) {
	m.CompressCalls++
	if m.CompressFunc != nil {
		return m.CompressFunc(src, dst)
	}
	return copyStats(src, dst)
}

// Decompress はモックの展開処理を実行します。未設定の場合は入力をそのまま書き込みます。
func (m *MockCodec) Decompress(src io.Reader, dst io.Writer) (rle.Stats, error) {
	m.DecompressCalls++
	if m.DecompressFunc != nil {
		return m.DecompressFunc(src, dst)
	}
	return copyStats(src, dst)
}

func copyStats(src io.Reader, dst io.Writer) (rle.Stats, error) {
	n, err := io.Copy(dst, src)
	return rle.Stats{BytesRead: n, BytesWritten: n}, err
}
