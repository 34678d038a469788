// Package lw annotates base pairs with their Leontis-Westhof class: the
// interacting edge of each base and the glycosidic orientation.
package lw

import (
	"rnapairs-core/hbond"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// RetryDist is the widened H-bond cutoff for the ambiguous sugar/Watson
// trans class.
const RetryDist = 5.1

// Annotation is a resolved pair type.
type Annotation struct {
	// Type is the edge pair plus orientation, e.g. "W/Wcis" or "S/Htran".
	Type string
	// Edges is the three-character edge core, e.g. "W/W".
	Edges     string
	Orient    string
	Bonds     []primitives.HBond
	Retried   bool
	Truncated bool
}

// Resolver assigns pair types. It is read-only and safe for concurrent use.
type Resolver struct {
	Services primitives.Set
	// Dist is the first-pass H-bond cutoff.
	Dist float64
	// Carbon and Backbone pass through to the enumerator.
	Carbon   bool
	Backbone bool
}

// Resolve annotates the pair (ri, rj). A first pass whose edge core and
// orientation read as S/W trans or W/S trans is discarded and redone once at
// RetryDist. The retry keeps the raw edge lookup: S/S refinement only applies
// to the first pass.
func (r *Resolver) Resolve(ri, rj *residue.Residue) Annotation {
	orient := r.Services.CisTrans(ri, rj)
	a := r.pass(ri, rj, r.Dist, orient, true)
	if ambiguous(a.Edges, orient) {
		a = r.pass(ri, rj, RetryDist, orient, false)
		a.Retried = true
	}
	return a
}

func (r *Resolver) pass(ri, rj *residue.Residue, dist float64, orient string, refine bool) Annotation {
	res := hbond.Enumerate(ri, rj, hbond.Params{
		Upper:    dist,
		Carbon:   r.Carbon,
		Backbone: r.Backbone,
	}, r.Services)
	edges := r.Services.Edges(res.Bonds, ri, rj)
	if refine && len(edges) >= 3 && edges[0] == 'S' && edges[2] == 'S' {
		edges = r.Services.RefineSugar(ri, rj, edges)
	}
	return Annotation{
		Type:      edges + orient,
		Edges:     edges,
		Orient:    orient,
		Bonds:     res.Bonds,
		Truncated: res.Overflow,
	}
}

func ambiguous(edges, orient string) bool {
	if len(edges) < 3 || orient == "" || orient[0] != 't' {
		return false
	}
	core := string([]byte{edges[0], edges[2]})
	return core == "SW" || core == "WS"
}
