package common

import (
	"reflect"
	"testing"

	"rnapairs-core/engine"
)

func rec(i, j int, kind engine.Kind, score float64) engine.PairRecord {
	r := engine.PairRecord{I: engine.ResidueRef{Index: i}, J: engine.ResidueRef{Index: j}, Kind: kind}
	r.Descriptors.Score = score
	return r
}

func order(rs []engine.PairRecord) [][2]int {
	out := make([][2]int, len(rs))
	for k, r := range rs {
		out[k] = [2]int{r.I.Index, r.J.Index}
	}
	return out
}

func TestSortRecords(t *testing.T) {
	in := []engine.PairRecord{
		rec(3, 9, engine.KindPair, 2),
		rec(1, 5, engine.KindStacked, 0),
		rec(1, 4, engine.KindPair, 5),
		rec(2, 8, engine.KindPair, -1),
	}

	byIndex := append([]engine.PairRecord(nil), in...)
	SortRecords(byIndex, SortIndex)
	if got, want := order(byIndex), [][2]int{{1, 4}, {1, 5}, {2, 8}, {3, 9}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("index order = %v", got)
	}

	byScore := append([]engine.PairRecord(nil), in...)
	SortRecords(byScore, SortScore)
	if got, want := order(byScore), [][2]int{{2, 8}, {3, 9}, {1, 4}, {1, 5}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("score order = %v", got)
	}

	same := append([]engine.PairRecord(nil), in...)
	SortRecords(same, SortNone)
	if !reflect.DeepEqual(order(same), order(in)) {
		t.Fatal("SortNone reordered records")
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{" a.pdb", "b.pdb", "a.pdb ", "", "B.pdb"})
	if want := []string{"a.pdb", "b.pdb", "B.pdb"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Unique = %v", got)
	}
}
