package native

import (
	"math"

	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

// Stacker detects base stacking from ring overlap in the mean base plane.
type Stacker struct {
	MaxAngle    float64 // largest folded angle between the base planes
	MinVertical float64 // smallest plane separation
}

// DefaultStacker uses the usual 30° / 2.6 Å stacking envelope.
var DefaultStacker = Stacker{MaxAngle: 30, MinVertical: 2.6}

// Stack implements primitives.StackDetector. It returns 0 for no stacking,
// 1 when one ring overlaps the other in projection and 2 when the overlap
// holds both ways.
func (s Stacker) Stack(ri, rj *residue.Residue, limit float64) int {
	if !ri.HasFrame || !rj.HasFrame {
		return 0
	}
	zi, zj := ri.Frame.Z(), rj.Frame.Z()
	if geom.FoldedAngle(zi, zj) > s.MaxAngle {
		return 0
	}
	ringI, ringJ := ri.Ring(), rj.Ring()
	if len(ringI) < 3 || len(ringJ) < 3 {
		return 0
	}

	n := geom.Bisector(zi, zj)
	ci, cj := ri.RingCenter(), rj.RingCenter()
	dv := math.Abs(cj.Sub(ci).Dot(n))
	if dv < s.MinVertical || dv > limit {
		return 0
	}

	u, w := planeBasis(n)
	pi := project(ringI, u, w)
	pj := project(ringJ, u, w)

	key := 0
	if anyInside(pj, pi) || inside(project1(cj, u, w), pi) {
		key++
	}
	if anyInside(pi, pj) || inside(project1(ci, u, w), pj) {
		key++
	}
	return key
}

type pt struct{ x, y float64 }

func planeBasis(n r3.Vector) (r3.Vector, r3.Vector) {
	ref := r3.Vector{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = r3.Vector{Y: 1}
	}
	u := geom.Normalize(ref.Sub(n.Mul(ref.Dot(n))))
	return u, n.Cross(u)
}

func project1(p, u, w r3.Vector) pt { return pt{p.Dot(u), p.Dot(w)} }

func project(atoms []residue.Atom, u, w r3.Vector) []pt {
	out := make([]pt, len(atoms))
	for k, a := range atoms {
		out[k] = project1(a.Pos, u, w)
	}
	return out
}

func anyInside(pts, poly []pt) bool {
	for _, p := range pts {
		if inside(p, poly) {
			return true
		}
	}
	return false
}

// inside is the even-odd ray casting test.
func inside(p pt, poly []pt) bool {
	in := false
	for a, b := 0, len(poly)-1; a < len(poly); b, a = a, a+1 {
		pa, pb := poly[a], poly[b]
		if (pa.y > p.y) != (pb.y > p.y) &&
			p.x < (pb.x-pa.x)*(p.y-pa.y)/(pb.y-pa.y)+pa.x {
			in = !in
		}
	}
	return in
}
