package classify

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"

	"rnapairs-core/frame"
	"rnapairs-core/geom"
	"rnapairs-core/native"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

type fixedStack int

func (k fixedStack) Stack(_, _ *residue.Residue, _ float64) int { return int(k) }

func services(stack int) primitives.Set {
	s := native.Services()
	s.StackDetector = fixedStack(stack)
	return s
}

// pair places bi at the lab frame and bj flipped about x with its origin at
// offset, the relative orientation of a Watson-Crick pair.
func pair(bi, bj byte, offset r3.Vector) (*residue.Residue, *residue.Residue) {
	ri := frame.Ideal(1, "A", 1, bi, geom.Identity, r3.Vector{})
	rj := frame.Ideal(20, "B", 1, bj, geom.Identity.Flipped(), offset)
	return ri, rj
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCanonicalGC(t *testing.T) {
	ri, rj := pair('G', 'C', r3.Vector{X: 2.0, Z: 0.1})
	c := New(DefaultThresholds(), services(0))
	res := c.Classify(ri, rj, false)

	if res.Status != Canonical || res.Stage != StageAccepted {
		t.Fatalf("status = %d stage = %v, want canonical", res.Status, res.Stage)
	}
	if !res.WCOrientation {
		t.Fatal("WC orientation not detected")
	}
	d := res.Descriptors
	if !near(d.Dv, 0.1) || !near(d.PlaneAngle, 0) {
		t.Fatalf("descriptors = %+v", d)
	}
	if want := d.Dorg + 2*d.Dv - WCBonus; !near(d.Score, want) {
		t.Fatalf("score = %v, want %v", d.Score, want)
	}
	if res.ZI != ri.Frame.Z() || res.ZJ != rj.Frame.Z() {
		t.Fatalf("z axes not recorded: %v %v", res.ZI, res.ZJ)
	}
	if mid := ri.Origin.Add(rj.Origin).Mul(0.5); d.MidOrigin.Sub(mid).Norm() > 1e-9 {
		t.Fatalf("mid origin = %v, want %v", d.MidOrigin, mid)
	}
	if !res.Paired() {
		t.Fatal("canonical result must report Paired")
	}
}

func TestSameGeometryAAIsNonCanonical(t *testing.T) {
	gi, gj := pair('G', 'C', r3.Vector{X: 2.0, Z: 0.1})
	ai, aj := pair('A', 'A', r3.Vector{X: 2.0, Z: 0.1})
	c := New(DefaultThresholds(), services(0))

	gc := c.Classify(gi, gj, false)
	aa := c.Classify(ai, aj, false)
	if aa.Status != NonCanonic {
		t.Fatalf("A/A status = %d, want %d", aa.Status, NonCanonic)
	}
	if !aa.WCOrientation {
		t.Fatal("A/A keeps the WC orientation descriptor")
	}
	wantAA := aa.Descriptors.Dorg + 2*aa.Descriptors.Dv
	if !near(aa.Descriptors.Score, wantAA) {
		t.Fatalf("A/A score = %v, want %v", aa.Descriptors.Score, wantAA)
	}
	if !near(gc.Descriptors.Score, aa.Descriptors.Score-WCBonus) {
		t.Fatalf("canonical bonus missing: %v vs %v", gc.Descriptors.Score, aa.Descriptors.Score)
	}
}

func TestCanonicalBounds(t *testing.T) {
	c := New(DefaultThresholds(), services(0))

	ri, rj := pair('G', 'C', r3.Vector{X: 3.0, Z: 0.1})
	if res := c.Classify(ri, rj, false); res.Status != NonCanonic {
		t.Fatalf("origin 3.0: status = %d, want %d", res.Status, NonCanonic)
	}

	ri, rj = pair('G', 'C', r3.Vector{X: 1.0, Z: 1.6})
	if res := c.Classify(ri, rj, false); res.Status != NonCanonic {
		t.Fatalf("vertical 1.6: status = %d, want %d", res.Status, NonCanonic)
	}

	// Parallel frames: not the WC orientation.
	ri = frame.Ideal(1, "A", 1, 'G', geom.Identity, r3.Vector{})
	rj = frame.Ideal(20, "B", 1, 'C', geom.Identity, r3.Vector{X: 1.0, Y: -6.5})
	res := c.Classify(ri, rj, false)
	if res.Status == Canonical || res.WCOrientation {
		t.Fatalf("parallel frames: status = %d wc = %v", res.Status, res.WCOrientation)
	}
}

func TestStackedPairIsRejected(t *testing.T) {
	ri, rj := pair('G', 'C', r3.Vector{X: 2.0, Z: 0.1})
	res := New(DefaultThresholds(), services(2)).Classify(ri, rj, false)
	if res.Status != Rejected || res.Stage != StageStacked || res.Stacked != 2 {
		t.Fatalf("status = %d stage = %v stacked = %d", res.Status, res.Stage, res.Stacked)
	}
	if res.Step != (geom.Step{}) {
		t.Fatalf("stacked pair got step parameters %+v", res.Step)
	}
}

func TestFilterChainStages(t *testing.T) {
	tilt := func(deg float64) geom.Frame {
		return geom.Identity.Flipped().Rotated(r3.Vector{X: 1}, deg)
	}
	cases := []struct {
		name   string
		build  func() (*residue.Residue, *residue.Residue)
		tweak  func(*Thresholds)
		stage  Stage
		status int
	}{
		{"vertical", func() (*residue.Residue, *residue.Residue) {
			return pair('G', 'C', r3.Vector{X: 1, Z: 3})
		}, nil, StageVertical, Rejected},
		{"angle", func() (*residue.Residue, *residue.Residue) {
			ri := frame.Ideal(1, "A", 1, 'G', geom.Identity, r3.Vector{})
			rj := frame.Ideal(20, "B", 1, 'C', tilt(70), r3.Vector{X: 1})
			return ri, rj
		}, nil, StageAngle, Rejected},
		{"coplanar", func() (*residue.Residue, *residue.Residue) {
			return pair('G', 'C', r3.Vector{X: 1, Z: 2.3})
		}, nil, StageCoplanar, Rejected},
		{"glycosidic", func() (*residue.Residue, *residue.Residue) {
			ri, rj := pair('G', 'C', r3.Vector{X: 1, Z: 0.1})
			rj.GlyProxy = ri.GlyProxy.Add(r3.Vector{X: 1})
			return ri, rj
		}, nil, StageGlycosidic, Rejected},
		{"neighbour", func() (*residue.Residue, *residue.Residue) {
			ri := frame.Ideal(1, "A", 1, 'G', geom.Identity, r3.Vector{})
			rj := frame.Ideal(2, "A", 2, 'C', tilt(20), r3.Vector{X: 1, Z: 2.1})
			return ri, rj
		}, nil, StageNeighbour, Rejected},
		{"origin", func() (*residue.Residue, *residue.Residue) {
			return pair('G', 'C', r3.Vector{X: 2, Z: 0.1})
		}, func(t *Thresholds) { t.MaxOrigin = 1 }, StageOrigin, Rejected},
		{"contact", func() (*residue.Residue, *residue.Residue) {
			return pair('G', 'C', r3.Vector{X: 2, Z: 0.1})
		}, func(t *Thresholds) { t.ShortContact = 0.5 }, StageContact, Rejected},
		{"accepted", func() (*residue.Residue, *residue.Residue) {
			return pair('G', 'C', r3.Vector{X: 2, Z: 0.1})
		}, nil, StageAccepted, Canonical},
	}
	for _, tc := range cases {
		th := DefaultThresholds()
		if tc.tweak != nil {
			tc.tweak(&th)
		}
		ri, rj := tc.build()
		res := New(th, services(0)).Classify(ri, rj, false)
		if res.Stage != tc.stage || res.Status != tc.status {
			t.Errorf("%s: stage = %v status = %d, want %v %d", tc.name, res.Stage, res.Status, tc.stage, tc.status)
		}
	}
}

func TestNetworkModeStopsBeforeContacts(t *testing.T) {
	ri, rj := pair('G', 'C', r3.Vector{X: 2, Z: 0.1})
	th := DefaultThresholds()
	th.ShortContact = 0.1
	res := New(th, services(2)).Classify(ri, rj, true)
	if res.Status != Qualifies || res.Stage != StageNetwork {
		t.Fatalf("status = %d stage = %v", res.Status, res.Stage)
	}
	if res.Stacked != 0 || res.Step != (geom.Step{}) {
		t.Fatalf("network mode ran later stages: %+v", res)
	}
}

func TestSameResidueRejected(t *testing.T) {
	ri, _ := pair('G', 'C', r3.Vector{})
	if res := New(DefaultThresholds(), services(0)).Classify(ri, ri, false); res.Status != Rejected || res.Stage != 0 {
		t.Fatalf("i == j: %+v", res)
	}
}

// Random placements: any pair that got as far as the contact probe passed
// the vertical and angle limits, and stacking never coexists with a pair.
func TestFilterChainMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	th := DefaultThresholds()
	for _, stack := range []int{0, 1} {
		c := New(th, services(stack))
		for k := 0; k < 2000; k++ {
			axis := geom.Normalize(r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()})
			f := geom.Identity.Flipped().Rotated(axis, rng.Float64()*90)
			off := r3.Vector{X: rng.Float64()*6 - 3, Y: rng.Float64()*6 - 3, Z: rng.Float64()*4 - 2}
			ri := frame.Ideal(1, "A", 1, 'G', geom.Identity, r3.Vector{})
			rj := frame.Ideal(20, "B", 1, 'C', f, off)

			res := c.Classify(ri, rj, false)
			if res.Stage >= StageContact {
				if res.Descriptors.Dv > th.MaxVertical || res.Descriptors.PlaneAngle > th.MaxPlaneAngle {
					t.Fatalf("pair reached %v with %+v", res.Stage, res.Descriptors)
				}
			}
			if res.Stacked > 0 && res.Status != Rejected {
				t.Fatalf("stacked pair with status %d", res.Status)
			}
			if res.Status == Canonical && !IsWatsonCrick(ri.Base, rj.Base) {
				t.Fatal("canonical status for non-WC code")
			}
			if res.Status == Canonical && (res.Descriptors.Dorg > WCMaxOrigin ||
				res.Descriptors.PlaneAngle > WCMaxAngle || res.Descriptors.Dv >= WCMaxVertical) {
				t.Fatalf("canonical outside bounds: %+v", res.Descriptors)
			}
		}
	}
}

func TestIsWatsonCrick(t *testing.T) {
	for _, code := range []string{"XX", "AT", "AU", "TA", "UA", "GC", "CG", "IC", "CI", "gc", "iC", "aU"} {
		if !IsWatsonCrick(code[0], code[1]) {
			t.Errorf("%s should be Watson-Crick", code)
		}
	}
	for _, code := range []string{"AA", "GU", "UG", "GA", "CC", "IA"} {
		if IsWatsonCrick(code[0], code[1]) {
			t.Errorf("%s should not be Watson-Crick", code)
		}
	}
}

func TestStageString(t *testing.T) {
	if StageStacked.String() != "stacked" || Stage(0).String() != "none" || Stage(99).String() != "none" {
		t.Fatal("stage names")
	}
}
