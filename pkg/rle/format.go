// Package rle はバイト単位のランレングス符号化 (RLE) を提供します。
//
// 符号化形式はヘッダもチェックサムも持たず、次の2種類のユニットの並びだけで構成されます。
//
//	リテラル  (ラン長 1)   : V            1バイト
//	ロング形式 (ラン長 >= 2): V V Chi Clo   4バイト (カウントはビッグエンディアン16bit)
//
// 同じ値が2回続くことがロング形式の目印になるため、エスケープバイトは使いません。
// ストリームの終端は転送側の EOF で判断します。
package rle

const (
	// LiteralUnitSize はリテラルユニットのバイト数
	LiteralUnitSize = 1

	// LongUnitSize はロング形式ユニットのバイト数
	LongUnitSize = 4

	// CountSize はカウントフィールドのバイト数
	CountSize = 2

	// MaxRunLength は1ユニットで表せる最大ラン長
	MaxRunLength = 0xFFFF
)

// AppendUnit は値 v、ラン長 n のユニットを dst に追加して返します。
// n が 1 の場合はリテラル、それ以外 (0 を含む) はロング形式になります。
func AppendUnit(dst []byte, v byte, n uint16) []byte {
	if n == 1 {
		return append(dst, v)
	}
	return append(dst, v, v, byte(n>>8), byte(n))
}
