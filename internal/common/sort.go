// internal/common/sort.go
package common

import (
	"sort"

	"rnapairs-core/engine"
)

// Sort keys accepted by SortRecords.
const (
	SortNone  = ""
	SortIndex = "index"
	SortScore = "score"
)

// LessRecord orders records by residue indices.
func LessRecord(a, b engine.PairRecord) bool {
	if a.I.Index != b.I.Index {
		return a.I.Index < b.I.Index
	}
	if a.J.Index != b.J.Index {
		return a.J.Index < b.J.Index
	}
	return a.Kind < b.Kind
}

// LessScore orders base pairs by score, best first; other records follow in
// index order.
func LessScore(a, b engine.PairRecord) bool {
	pa, pb := a.Kind == engine.KindPair, b.Kind == engine.KindPair
	if pa != pb {
		return pa
	}
	if pa && a.Descriptors.Score != b.Descriptors.Score {
		return a.Descriptors.Score < b.Descriptors.Score
	}
	return LessRecord(a, b)
}

// SortRecords sorts in place by the named key; SortNone keeps the order.
func SortRecords(rs []engine.PairRecord, by string) {
	switch by {
	case SortIndex:
		sort.SliceStable(rs, func(i, j int) bool { return LessRecord(rs[i], rs[j]) })
	case SortScore:
		sort.SliceStable(rs, func(i, j int) bool { return LessScore(rs[i], rs[j]) })
	}
}
