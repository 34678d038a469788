package pretty

import (
	"os"
	"path/filepath"
	"testing"

	"rnapairs-core/engine"
	"rnapairs-core/primitives"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func gc() engine.PairRecord {
	return engine.PairRecord{
		I:    engine.ResidueRef{Index: 1, Chain: "A", Seq: 1, Base: "G"},
		J:    engine.ResidueRef{Index: 8, Chain: "B", Seq: 8, Base: "C"},
		Kind: engine.KindPair, Type: "W/Wcis",
		HBonds: []primitives.HBond{
			{AtomI: " N1 ", AtomJ: " N3 ", Dist: 2.90},
			{AtomI: " O6 ", AtomJ: " N4 ", Dist: 3.60},
		},
	}
}

func TestRenderPair(t *testing.T) {
	want := "A:1 G  W/Wcis  C B:8\n" +
		"      N1 |------------| N3   2.90\n" +
		"      O6 ¦--------------¦ N4   3.60\n"
	if got := RenderPair(gc()); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPair_MaxBondsAndKind(t *testing.T) {
	r := gc()
	r.Type = ""
	got := RenderPairWithOptions(r, Options{MaxBonds: 1, Indent: 2})
	want := "A:1 G  pair  C B:8\n" +
		"    N1 |------------| N3   2.90\n" +
		"  ... 1 more\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPair_Golden(t *testing.T) {
	r := gc()
	r.HBonds = append(r.HBonds, primitives.HBond{AtomI: " N2 ", AtomJ: " O2 ", Dist: 2.86})
	got := RenderPairWithOptions(r, Options{Scale: 0.5, DashGlyph: "=", Indent: 4})
	path := filepath.Join("testdata", "gc_three_bonds.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	if want := mustRead(path, t); got != want {
		t.Fatalf("golden mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.DashGlyph != "-" || d.StrongGlyph != "|" || d.WeakGlyph != "¦" || d.Scale != 0.25 {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
