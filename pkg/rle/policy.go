package rle

import (
	"fmt"
	"strings"
)

// OverflowPolicy は MaxRunLength を超えるランの扱いを決めます
type OverflowPolicy int

const (
	// OverflowSplit は長いランを MaxRunLength ごとの複数ユニットに分割します (既定値)
	OverflowSplit OverflowPolicy = iota

	// OverflowTruncate はカウントを 16bit に切り詰めます。
	// 旧実装とバイト単位で互換ですが、復元結果は元データと一致しません。
	OverflowTruncate

	// OverflowReject は ErrRunTooLong を返して符号化を中止します
	OverflowReject
)

var policyNames = map[OverflowPolicy]string{
	OverflowSplit:    "split",
	OverflowTruncate: "truncate",
	OverflowReject:   "reject",
}

func (p OverflowPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy は文字列からポリシーを取得します。空文字列は OverflowSplit です。
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OverflowSplit, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown overflow policy %q (want split, truncate or reject)", s)
}
