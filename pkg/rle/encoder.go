package rle

import (
	"errors"
	"io"
	"time"
)

// EncodeOptions は圧縮時の設定です。ゼロ値は OverflowSplit です。
type EncodeOptions struct {
	Overflow OverflowPolicy
}

// Compress は src を最後まで読み込み、RLE 符号化したデータを dst に書き込みます。
// MaxRunLength を超えるランは分割して書き込みます。
func Compress(src io.Reader, dst io.Writer) (Stats, error) {
	return CompressWithOptions(src, dst, EncodeOptions{})
}

// CompressWithOptions は opts に従って src を圧縮し dst に書き込みます。
// エラー時に dst へ書き込まれたデータは不完全なので破棄してください。
func CompressWithOptions(src io.Reader, dst io.Writer, opts EncodeOptions) (Stats, error) {
	start := time.Now()
	in := newByteReader(src)
	out := newByteWriter(dst)
	enc := &encoder{out: out, policy: opts.Overflow}

	err := enc.run(in)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}

	return Stats{
		BytesRead:    in.n,
		BytesWritten: out.n,
		Runs:         enc.runs,
		Units:        enc.units,
		Elapsed:      time.Since(start),
	}, err
}

type encoder struct {
	out    *byteWriter
	policy OverflowPolicy
	runs   int64
	units  int64
}

// run はランを1つずつ検出して書き込みます。保持するのは現在のランの値と長さだけです。
func (e *encoder) run(in *byteReader) error {
	cur, err := in.ReadByte()
	for err == nil {
		value := cur
		var length int64 = 1
		for {
			cur, err = in.ReadByte()
			if err != nil || cur != value {
				break
			}
			length++
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		e.runs++
		if werr := e.emit(value, length); werr != nil {
			return werr
		}
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// emit はラン1つ分のユニットを書き込みます
func (e *encoder) emit(value byte, length int64) error {
	switch e.policy {
	case OverflowTruncate:
		// 旧実装と同じく 16bit に収まらない上位ビットは捨てる
		count := uint16(length)
		if count < 2 {
			return e.literal(value)
		}
		return e.long(value, count)
	case OverflowReject:
		if length > MaxRunLength {
			return &RunError{Value: value, Length: length, Err: ErrRunTooLong}
		}
	}

	for length > MaxRunLength {
		if err := e.long(value, MaxRunLength); err != nil {
			return err
		}
		length -= MaxRunLength
	}
	if length == 1 {
		return e.literal(value)
	}
	return e.long(value, uint16(length))
}

func (e *encoder) literal(value byte) error {
	e.units++
	return e.out.WriteByte(value)
}

func (e *encoder) long(value byte, count uint16) error {
	e.units++
	var unit [LongUnitSize]byte
	_, err := e.out.Write(AppendUnit(unit[:0], value, count))
	return err
}
