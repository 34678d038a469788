package native

import (
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Edge letters.
const (
	EdgeWatson    = 'W'
	EdgeHoogsteen = 'H'
	EdgeSugar     = 'S'
	EdgeNone      = '.'
)

type edgeSets struct{ w, h, s []string }

var edgeTable = map[byte]edgeSets{
	'A': {w: []string{" N1 ", " C2 ", " N6 "}, h: []string{" N6 ", " N7 ", " C8 "}, s: []string{" C2 ", " N3 ", " O2'"}},
	'G': {w: []string{" N1 ", " N2 ", " O6 "}, h: []string{" O6 ", " N7 ", " C8 "}, s: []string{" N2 ", " N3 ", " O2'"}},
	'I': {w: []string{" N1 ", " C2 ", " O6 "}, h: []string{" O6 ", " N7 ", " C8 "}, s: []string{" C2 ", " N3 ", " O2'"}},
	'C': {w: []string{" O2 ", " N3 ", " N4 "}, h: []string{" N4 ", " C5 ", " C6 "}, s: []string{" O2 ", " O2'"}},
	'U': {w: []string{" O2 ", " N3 ", " O4 "}, h: []string{" O4 ", " C5 ", " C6 "}, s: []string{" O2 ", " O2'"}},
	'T': {w: []string{" O2 ", " N3 ", " O4 "}, h: []string{" O4 ", " C5M", " C6 "}, s: []string{" O2 ", " O2'"}},
	'P': {w: []string{" O2 ", " N3 ", " O4 "}, h: []string{" O4 ", " N1 ", " C6 "}, s: []string{" O2 ", " O2'"}},
}

// EdgeLookup assigns each side of a pair the edge that carries most of its
// contacts. Atoms unique to one edge weigh twice as much as atoms shared by
// two; ties go W, then H, then S.
type EdgeLookup struct{}

func (EdgeLookup) Edges(bonds []primitives.HBond, ri, rj *residue.Residue) string {
	ei := edgeFor(ri.UpperBase(), bonds, func(b primitives.HBond) string { return b.AtomI })
	ej := edgeFor(rj.UpperBase(), bonds, func(b primitives.HBond) string { return b.AtomJ })
	return string([]byte{ei, '/', ej})
}

func edgeFor(base byte, bonds []primitives.HBond, side func(primitives.HBond) string) byte {
	sets, ok := edgeTable[base]
	if !ok {
		return EdgeNone
	}
	var score [3]int
	for _, b := range bonds {
		a := side(b)
		hit := [3]bool{contains(sets.w, a), contains(sets.h, a), contains(sets.s, a)}
		n := 0
		for _, h := range hit {
			if h {
				n++
			}
		}
		if n == 0 {
			continue
		}
		w := 2
		if n > 1 {
			w = 1
		}
		for k, h := range hit {
			if h {
				score[k] += w
			}
		}
	}
	best, arg := 0, -1
	for k, v := range score {
		if v > best {
			best, arg = v, k
		}
	}
	switch arg {
	case 0:
		return EdgeWatson
	case 1:
		return EdgeHoogsteen
	case 2:
		return EdgeSugar
	}
	return EdgeNone
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
