package rle

import (
	"errors"
	"io"
	"time"
)

// Decompress は RLE 符号化された src を展開して dst に書き込みます。
// ロング形式ユニットの途中で入力が終わった場合は ErrTruncatedStream を包んだ
// *FormatError を返します。壊れたユニットの分は書き込みません。
func Decompress(src io.Reader, dst io.Writer) (Stats, error) {
	start := time.Now()
	in := newByteReader(src)
	out := newByteWriter(dst)
	dec := &decoder{in: in, out: out}

	err := dec.run()
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}

	return Stats{
		BytesRead:    in.n,
		BytesWritten: out.n,
		Units:        dec.units,
		Elapsed:      time.Since(start),
	}, err
}

type decoder struct {
	in    *byteReader
	out   *byteWriter
	units int64
}

// run は2バイトの先読み (first, next) で次のユニットの種類を判定します。
//
//	first == next : ロング形式。続く2バイトがカウント
//	first != next : リテラル。first を書き込み、next を first にずらす
//	next が EOF   : 保留中の first をリテラルとして書き出して終了
func (d *decoder) run() error {
	first, err := d.readByte()
	if err != nil {
		// 空の入力
		return eofAsNil(err)
	}

	for {
		unitStart := d.in.n - 1
		next, err := d.readByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			d.units++
			return d.out.WriteByte(first)
		}

		if first != next {
			d.units++
			if err := d.out.WriteByte(first); err != nil {
				return err
			}
			first = next
			continue
		}

		count, err := d.readCount(unitStart)
		if err != nil {
			return err
		}
		d.units++
		if err := d.out.repeat(first, int(count)); err != nil {
			return err
		}

		first, err = d.readByte()
		if err != nil {
			// ロング形式ユニットでちょうど終わった
			return eofAsNil(err)
		}
	}
}

// readCount はビッグエンディアンのカウントを読み込みます
func (d *decoder) readCount(unitStart int64) (uint16, error) {
	var b [CountSize]byte
	for i := range b {
		c, err := d.readByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, &FormatError{Offset: unitStart, Err: ErrTruncatedStream}
			}
			return 0, err
		}
		b[i] = c
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (d *decoder) readByte() (byte, error) {
	return d.in.ReadByte()
}

func eofAsNil(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
