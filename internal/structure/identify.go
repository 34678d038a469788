// internal/structure/identify.go
package structure

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/residue"
)

// maxBond is the longest ring bond accepted when recognising a base.
const maxBond = 2.0

var sixRing = [][2]string{
	{" N1 ", " C2 "}, {" C2 ", " N3 "}, {" N3 ", " C4 "},
	{" C4 ", " C5 "}, {" C5 ", " C6 "}, {" C6 ", " N1 "},
}

var fiveRing = [][2]string{
	{" C4 ", " N9 "}, {" N9 ", " C8 "}, {" C8 ", " N7 "}, {" N7 ", " C5 "},
}

// InferBase recognises a modified or unnamed nucleotide from its ring
// geometry. It returns a lower-case letter, or 0 when the atoms do not form
// a nucleobase.
func InferBase(atoms []residue.Atom) byte {
	pos := make(map[string]r3.Vector, len(atoms))
	for _, a := range atoms {
		if _, dup := pos[a.Name]; !dup {
			pos[a.Name] = a.Pos
		}
	}
	if !bonded(pos, sixRing) {
		return 0
	}
	if bonded(pos, fiveRing) {
		if _, ok := pos[" O6 "]; ok {
			return 'g'
		}
		return 'a'
	}
	if _, ok := pos[" N4 "]; ok {
		return 'c'
	}
	if _, ok := pos[" C5M"]; ok {
		return 't'
	}
	return 'u'
}

func bonded(pos map[string]r3.Vector, bonds [][2]string) bool {
	for _, b := range bonds {
		p, ok1 := pos[b[0]]
		q, ok2 := pos[b[1]]
		if !ok1 || !ok2 || p.Sub(q).Norm() > maxBond {
			return false
		}
	}
	return true
}
