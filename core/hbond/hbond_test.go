package hbond

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"rnapairs-core/frame"
	"rnapairs-core/geom"
	"rnapairs-core/native"
	"rnapairs-core/residue"
)

var cat = native.HCatalog{}

func gcPair() (*residue.Residue, *residue.Residue) {
	g := frame.Ideal(1, "A", 1, 'G', geom.Identity, r3.Vector{})
	c := frame.Ideal(2, "B", 1, 'C', geom.Identity.Flipped(), r3.Vector{})
	return g, c
}

func TestEnumerateWatsonCrick(t *testing.T) {
	g, c := gcPair()
	res := Enumerate(g, c, Params{}, cat)
	if res.Overflow || res.Err() != nil {
		t.Fatalf("unexpected overflow: %+v", res)
	}
	want := map[[2]string]bool{
		{" N1 ", " N3 "}: true,
		{" O6 ", " N4 "}: true,
		{" N2 ", " O2 "}: true,
	}
	if res.Count != len(want) || len(res.Bonds) != res.Count {
		t.Fatalf("count = %d (%d bonds), want %d: %+v", res.Count, len(res.Bonds), len(want), res.Bonds)
	}
	for _, b := range res.Bonds {
		if !want[[2]string{b.AtomI, b.AtomJ}] {
			t.Errorf("unexpected bond %+v", b)
		}
		if b.Dist <= 0 || b.Dist >= 3.4 {
			t.Errorf("bond %+v outside (0, 3.4)", b)
		}
	}
}

func TestChangeWidensButCaps(t *testing.T) {
	g, c := gcPair()
	base := Enumerate(g, c, Params{}, cat)
	wide := Enumerate(g, c, Params{Change: 10}, cat)
	if wide.Count <= base.Count {
		t.Fatalf("change did not widen: %d vs %d", wide.Count, base.Count)
	}
	for _, b := range wide.Bonds {
		if b.Dist >= 4.0 {
			t.Errorf("bond %+v beyond the 4.0 cap", b)
		}
	}
}

func TestUpperModeOnlyPolar(t *testing.T) {
	g, c := gcPair()
	res := Enumerate(g, c, Params{Upper: 5.1, Carbon: true}, cat)
	if res.Count < 3 {
		t.Fatalf("upper mode lost contacts: %+v", res.Bonds)
	}
	for _, b := range res.Bonds {
		if !residue.IsPolar(b.AtomI) || !residue.IsPolar(b.AtomJ) {
			t.Errorf("non-polar contact %+v", b)
		}
		if b.Dist >= 5.1 {
			t.Errorf("contact %+v beyond upper cutoff", b)
		}
	}
}

func TestCarbonFlag(t *testing.T) {
	ri := residue.New(1, "A", 1, "", 'A', []residue.Atom{{Name: " C8 ", Pos: r3.Vector{}}})
	rj := residue.New(2, "A", 2, "", 'U', []residue.Atom{{Name: " O4 ", Pos: r3.Vector{X: 3.5}}})
	if res := Enumerate(ri, rj, Params{}, cat); res.Count != 0 {
		t.Fatalf("carbon kept without flag: %+v", res.Bonds)
	}
	res := Enumerate(ri, rj, Params{Carbon: true}, cat)
	if res.Count != 1 || res.Bonds[0].AtomI != " C8 " {
		t.Fatalf("carbon flag: %+v", res.Bonds)
	}
}

func TestExcludedCarbonsNeverBond(t *testing.T) {
	cases := []struct {
		base byte
		atom string
		want int
	}{
		{'A', " C4 ", 0}, {'A', " C5 ", 0}, {'A', " C6 ", 0},
		{'I', " C4 ", 0}, {'I', " C5 ", 0}, {'I', " C6 ", 0},
		{'G', " C2 ", 0}, {'G', " C4 ", 0}, {'G', " C5 ", 0}, {'G', " C6 ", 0},
		{'P', " C4 ", 0}, {'P', " C5 ", 0},
		{'U', " C2 ", 0}, {'U', " C4 ", 0},
		{'C', " C2 ", 0}, {'C', " C4 ", 0},
		{'T', " C2 ", 0}, {'T', " C4 ", 0},
		{'A', " C1'", 0}, {'G', " C4'", 0},
		{'A', " P  ", 0},
		{'G', " C8 ", 1},
		{'U', " C5 ", 1},
		{'C', " C6 ", 1},
	}
	p := Params{Carbon: true, Backbone: true}
	for _, tc := range cases {
		ri := residue.New(1, "A", 1, "", tc.base, []residue.Atom{{Name: tc.atom, Pos: r3.Vector{}}})
		rj := residue.New(2, "A", 2, "", 'G', []residue.Atom{{Name: " N1 ", Pos: r3.Vector{X: 3.0}}})
		if got := Enumerate(ri, rj, p, cat).Count; got != tc.want {
			t.Errorf("%c %q vs G N1 at 3.0: %d bonds, want %d", tc.base, tc.atom, got, tc.want)
		}
		// the filter applies to either side of the pair
		if got := Enumerate(rj, ri, p, cat).Count; got != tc.want {
			t.Errorf("G N1 vs %c %q at 3.0: %d bonds, want %d", tc.base, tc.atom, got, tc.want)
		}
	}
}

func TestBackboneFlag(t *testing.T) {
	ri := residue.New(1, "A", 1, "", 'G', []residue.Atom{{Name: " O1P", Pos: r3.Vector{}}})
	rj := residue.New(2, "A", 2, "", 'G', []residue.Atom{{Name: " N1 ", Pos: r3.Vector{X: 3.0}}})
	if res := Enumerate(ri, rj, Params{}, cat); res.Count != 0 {
		t.Fatalf("phosphate oxygen kept without flag: %+v", res.Bonds)
	}
	if res := Enumerate(ri, rj, Params{Backbone: true}, cat); res.Count != 1 {
		t.Fatalf("backbone flag: %+v", res.Bonds)
	}
}

func TestBackboneOxygenPairsSkipped(t *testing.T) {
	ri := residue.New(1, "A", 1, "", 'G', []residue.Atom{
		{Name: " O4'", Pos: r3.Vector{}},
		{Name: " N1 ", Pos: r3.Vector{Y: 50}},
	})
	rj := residue.New(2, "A", 2, "", 'G', []residue.Atom{{Name: " O1P", Pos: r3.Vector{X: 2.5}}})
	if res := Enumerate(ri, rj, Params{Backbone: true}, cat); res.Count != 0 {
		t.Fatalf("backbone-backbone contact reported: %+v", res.Bonds)
	}
}

func TestResiduesWithoutHydrogensSkipped(t *testing.T) {
	ri := residue.New(1, "A", 1, "", 'X', []residue.Atom{{Name: " N1 ", Pos: r3.Vector{}}})
	rj := residue.New(2, "A", 2, "", 'X', []residue.Atom{{Name: " N3 ", Pos: r3.Vector{X: 2.8}}})
	if res := Enumerate(ri, rj, Params{}, cat); res.Count != 0 {
		t.Fatalf("unknown chemistry produced bonds: %+v", res.Bonds)
	}
}

func TestOverflow(t *testing.T) {
	var ai, aj []residue.Atom
	for k := 0; k < 30; k++ {
		ai = append(ai, residue.Atom{Name: " N3 ", Pos: r3.Vector{X: 0.01 * float64(k)}})
		aj = append(aj, residue.Atom{Name: " N3 ", Pos: r3.Vector{X: 3, Y: 0.01 * float64(k)}})
	}
	ri := residue.New(1, "A", 1, "", 'U', ai)
	rj := residue.New(2, "A", 2, "", 'U', aj)

	res := Enumerate(ri, rj, Params{}, cat)
	if !res.Overflow || res.Count != Capacity || len(res.Bonds) != Capacity {
		t.Fatalf("overflow = %v count = %d bonds = %d", res.Overflow, res.Count, len(res.Bonds))
	}
	if !errors.Is(res.Err(), ErrTooManyHBonds) {
		t.Fatalf("Err = %v", res.Err())
	}
}

func TestThreshold(t *testing.T) {
	cases := []struct {
		m, n   string
		change float64
		want   float64
	}{
		{" N1 ", " N3 ", 0, 3.4},
		{" C8 ", " N3 ", 0, 3.6},
		{" O4 ", " C5 ", 0, 3.6},
		{" O2'", " N3 ", 0, 3.4},
		{" N6 ", " O2'", 0, 3.4},
		{" O1P", " N3 ", 0, 3.2},
		{" O2'", " O4'", 0, 3.1},
		{" N1 ", " N3 ", 1, 4.0},
		{" O2'", " O4'", 1, 3.8},
		{" N1 ", " N3 ", -0.4, 3.0},
	}
	for _, tc := range cases {
		if got := Threshold(tc.m, tc.n, tc.change); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Threshold(%q,%q,%v) = %v, want %v", tc.m, tc.n, tc.change, got, tc.want)
		}
	}
}
