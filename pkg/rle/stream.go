package rle

import (
	"bufio"
	"io"
)

// byteReader は io.Reader から1バイトずつ読み込み、読み込んだバイト数を数えます。
type byteReader struct {
	r io.ByteReader
	n int64
}

func newByteReader(r io.Reader) *byteReader {
	if br, ok := r.(io.ByteReader); ok {
		return &byteReader{r: br}
	}
	return &byteReader{r: bufio.NewReader(r)}
}

// ReadByte は次の1バイトを返します。入力の終わりでは io.EOF を返します。
func (br *byteReader) ReadByte() (byte, error) {
	b, err := br.r.ReadByte()
	if err != nil {
		return 0, err
	}
	br.n++
	return b, nil
}

// repeatChunk は同じ値を連続して書き込むときの1回あたりの最大バイト数
const repeatChunk = 4096

// byteWriter は io.Writer へのバッファ付き書き込みと書き込みバイト数の集計を行います。
type byteWriter struct {
	w   *bufio.Writer
	n   int64
	buf []byte // repeat 用
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{w: bufio.NewWriter(w)}
}

func (bw *byteWriter) WriteByte(b byte) error {
	if err := bw.w.WriteByte(b); err != nil {
		return err
	}
	bw.n++
	return nil
}

func (bw *byteWriter) Write(p []byte) (int, error) {
	n, err := bw.w.Write(p)
	bw.n += int64(n)
	return n, err
}

// repeat は b を count 回書き込みます
func (bw *byteWriter) repeat(b byte, count int) error {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return bw.WriteByte(b)
	}
	size := min(count, repeatChunk)
	if cap(bw.buf) < size {
		bw.buf = make([]byte, repeatChunk)
	}
	chunk := bw.buf[:size]
	for i := range chunk {
		chunk[i] = b
	}
	for count > 0 {
		n := min(count, len(chunk))
		if _, err := bw.Write(chunk[:n]); err != nil {
			return err
		}
		count -= n
	}
	return nil
}

func (bw *byteWriter) Flush() error {
	return bw.w.Flush()
}
