package native

import (
	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

const (
	c1p = " C1'"
	o2p = " O2'"
	o4p = " O4'"
)

// CisTrans decides the glycosidic orientation of a pair: cis when both C1'
// atoms lie on the same side of the line joining the two ring centres.
type CisTrans struct{}

func (CisTrans) CisTrans(ri, rj *residue.Residue) string {
	ai, okI := ri.Atom(c1p)
	aj, okJ := rj.Atom(c1p)
	if !okI || !okJ {
		return ""
	}
	ci, cj := ri.RingCenter(), rj.RingCenter()
	d := cj.Sub(ci)
	n := geom.Bisector(ri.Frame.Z(), rj.Frame.Z())

	si := n.Dot(d.Cross(ai.Pos.Sub(ci)))
	sj := n.Dot(d.Cross(aj.Pos.Sub(cj)))
	if si*sj >= 0 {
		return "cis"
	}
	return "tran"
}

// SugarRefiner marks the residue whose O2' sits further from the partner
// base with a lower-case s, so S/S pairs read S/s or s/S.
type SugarRefiner struct{}

func (SugarRefiner) RefineSugar(ri, rj *residue.Residue, edges string) string {
	if len(edges) < 3 || edges[0] != EdgeSugar || edges[2] != EdgeSugar {
		return edges
	}
	oi, okI := ri.Atom(o2p)
	oj, okJ := rj.Atom(o2p)
	if !okI || !okJ {
		return edges
	}
	di := oi.Pos.Sub(rj.RingCenter()).Norm()
	dj := oj.Pos.Sub(ri.RingCenter()).Norm()
	b := []byte(edges)
	if di > dj {
		b[0] = 's'
	} else {
		b[2] = 's'
	}
	return string(b)
}

// Chi is the glycosidic torsion O4'-C1'-N9-C4 (purines) or O4'-C1'-N1-C2
// (pyrimidines).
func Chi(r *residue.Residue) (float64, bool) {
	names := [4]string{o4p, c1p, " N1 ", " C2 "}
	if r.Purine {
		names = [4]string{o4p, c1p, " N9 ", " C4 "}
	}
	var p [4]residue.Atom
	for k, n := range names {
		a, ok := r.Atom(n)
		if !ok {
			return 0, false
		}
		p[k] = a
	}
	return geom.Torsion(p[0].Pos, p[1].Pos, p[2].Pos, p[3].Pos), true
}

// IsSyn reports a syn glycosidic conformation (-90° < chi < 90°).
func IsSyn(r *residue.Residue) bool {
	return r.HasChi && r.Chi > -90 && r.Chi < 90
}
