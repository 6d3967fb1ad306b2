// Package codec はファイルの圧縮・展開に使うコーデックを提供します
package codec

import (
	"io"

	"github.com/shiroemons/go-fcomp/pkg/rle"
)

// RLECodec は pkg/rle を使ってストリームを圧縮・展開します
type RLECodec struct {
	opts rle.EncodeOptions
}

// New は指定したオーバーフローポリシーを使う RLECodec を作成します
func New(policy rle.OverflowPolicy) *RLECodec {
	return &RLECodec{opts: rle.EncodeOptions{Overflow: policy}}
}

// Policy は圧縮時のオーバーフローポリシーを返します
func (c *RLECodec) Policy() rle.OverflowPolicy {
	return c.opts.Overflow
}

// Compress は src を圧縮して dst に書き込みます
func (c *RLECodec) Compress(src io.Reader, dst io.Writer) (rle.Stats, error) {
	return rle.CompressWithOptions(src, dst, c.opts)
}

// Decompress は src を展開して dst に書き込みます
func (c *RLECodec) Decompress(src io.Reader, dst io.Writer) (rle.Stats, error) {
	return rle.Decompress(src, dst)
}
