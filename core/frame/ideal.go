package frame

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

// Ideal builds a residue whose atoms are the standard base placed at origin
// with orientation f. The frame fields are set directly.
func Ideal(index int, chain string, seq int, base byte, f geom.Frame, origin r3.Vector) *residue.Residue {
	t := templates[upper(base)]
	atoms := make([]residue.Atom, 0, len(t.atoms))
	for _, a := range t.atoms {
		atoms = append(atoms, residue.Atom{
			Name: a.name,
			Pos:  origin.Add(f.Apply(r3.Vector{X: a.x, Y: a.y})),
		})
	}
	r := residue.New(index, chain, seq, "", base, atoms)
	r.Frame = f
	r.Origin = origin
	r.Purine = t.purine
	r.HasFrame = len(t.atoms) > 0
	gly := " N1 "
	if t.purine {
		gly = " N9 "
	}
	r.GlyProxy = origin
	if a, ok := r.Atom(gly); ok {
		r.GlyProxy = a.Pos
	}
	return r
}
