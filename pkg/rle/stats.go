package rle

import "time"

// Stats は1回の圧縮・展開の結果です
type Stats struct {
	BytesRead    int64
	BytesWritten int64
	Runs         int64 // 圧縮時に検出したラン数
	Units        int64 // 書き込んだ (展開時は読み込んだ) ユニット数
	Elapsed      time.Duration
}

// Ratio は出力サイズ / 入力サイズを返します。入力が空なら 0 です。
func (s Stats) Ratio() float64 {
	if s.BytesRead == 0 {
		return 0
	}
	return float64(s.BytesWritten) / float64(s.BytesRead)
}
