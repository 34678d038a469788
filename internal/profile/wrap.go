// internal/profile/wrap.go
package profile

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Wrap returns s with every service counting its calls into r. A nil r
// returns s unchanged.
func (r *Recorder) Wrap(s primitives.Set) primitives.Set {
	if r == nil {
		return s
	}
	return primitives.Set{
		HCatalog:         hcatalog{s.HCatalog, r},
		StackDetector:    stacker{s.StackDetector, r},
		EdgeLookup:       edges{s.EdgeLookup, r},
		SugarRefiner:     sugar{s.SugarRefiner, r},
		CisTransDetector: cisTrans{s.CisTransDetector, r},
		StepSolver:       solver{s.StepSolver, r},
	}
}

type hcatalog struct {
	next primitives.HCatalog
	r    *Recorder
}

func (h hcatalog) Hydrogens(res *residue.Residue, atom string) primitives.HydrogenInfo {
	h.r.Add(HCatalogCalls, 1)
	return h.next.Hydrogens(res, atom)
}

type stacker struct {
	next primitives.StackDetector
	r    *Recorder
}

func (s stacker) Stack(ri, rj *residue.Residue, limit float64) int {
	s.r.Add(StackCalls, 1)
	return s.next.Stack(ri, rj, limit)
}

// One edge lookup per LW enumeration pass.
type edges struct {
	next primitives.EdgeLookup
	r    *Recorder
}

func (e edges) Edges(b []primitives.HBond, ri, rj *residue.Residue) string {
	e.r.Add(LWEnumerations, 1)
	return e.next.Edges(b, ri, rj)
}

type sugar struct {
	next primitives.SugarRefiner
	r    *Recorder
}

func (s sugar) RefineSugar(ri, rj *residue.Residue, e string) string {
	s.r.Add(SugarRefines, 1)
	return s.next.RefineSugar(ri, rj, e)
}

// One orientation call per resolved pair.
type cisTrans struct {
	next primitives.CisTransDetector
	r    *Recorder
}

func (c cisTrans) CisTrans(ri, rj *residue.Residue) string {
	c.r.Add(LWCalls, 1)
	return c.next.CisTrans(ri, rj)
}

type solver struct {
	next primitives.StepSolver
	r    *Recorder
}

func (s solver) Step(f1 geom.Frame, o1 r3.Vector, f2 geom.Frame, o2 r3.Vector) (geom.Step, geom.Frame, r3.Vector) {
	s.r.Add(StepCalls, 1)
	return s.next.Step(f1, o1, f2, o2)
}
