// core/native/hcatalog.go
package native

import (
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// HCatalog knows which base, sugar and phosphate atoms carry hydrogens.
type HCatalog struct{}

type hlist struct {
	with    []string
	without []string
}

var baseHydrogens = map[byte]hlist{
	'A': {with: []string{" N6 ", " C2 ", " C8 "}, without: []string{" N1 ", " N3 ", " N7 ", " C4 ", " C5 ", " C6 ", " N9 "}},
	'G': {with: []string{" N1 ", " N2 ", " C8 "}, without: []string{" O6 ", " N3 ", " N7 ", " C2 ", " C4 ", " C5 ", " C6 ", " N9 "}},
	'I': {with: []string{" N1 ", " C2 ", " C8 "}, without: []string{" O6 ", " N3 ", " N7 ", " C4 ", " C5 ", " C6 ", " N9 "}},
	'C': {with: []string{" N4 ", " C5 ", " C6 "}, without: []string{" O2 ", " N3 ", " N1 ", " C2 ", " C4 "}},
	'U': {with: []string{" N3 ", " C5 ", " C6 "}, without: []string{" O2 ", " O4 ", " N1 ", " C2 ", " C4 "}},
	'T': {with: []string{" N3 ", " C6 ", " C5M"}, without: []string{" O2 ", " O4 ", " N1 ", " C2 ", " C4 ", " C5 "}},
	'P': {with: []string{" N1 ", " N3 ", " C6 "}, without: []string{" O2 ", " O4 ", " C2 ", " C4 ", " C5 "}},
}

var backboneHydrogens = hlist{
	with:    []string{" O2'", " C1'", " C2'", " C3'", " C4'", " C5'"},
	without: []string{" O3'", " O4'", " O5'", " O1P", " O2P", " O3P", " P  "},
}

var hTable = buildHTable()

func buildHTable() map[byte]map[string]primitives.HydrogenInfo {
	out := make(map[byte]map[string]primitives.HydrogenInfo, len(baseHydrogens))
	for b, l := range baseHydrogens {
		m := make(map[string]primitives.HydrogenInfo)
		for _, lst := range []hlist{backboneHydrogens, l} {
			for _, a := range lst.with {
				m[a] = primitives.HydrogenInfo{WithH: true}
			}
			for _, a := range lst.without {
				m[a] = primitives.HydrogenInfo{WithoutH: true}
			}
		}
		out[b] = m
	}
	return out
}

// Hydrogens implements primitives.HCatalog. Modified bases are looked up
// under their parent letter; unknown bases only resolve backbone atoms.
func (HCatalog) Hydrogens(r *residue.Residue, atom string) primitives.HydrogenInfo {
	if m, ok := hTable[r.UpperBase()]; ok {
		return m[atom]
	}
	for _, a := range backboneHydrogens.with {
		if a == atom {
			return primitives.HydrogenInfo{WithH: true}
		}
	}
	for _, a := range backboneHydrogens.without {
		if a == atom {
			return primitives.HydrogenInfo{WithoutH: true}
		}
	}
	return primitives.HydrogenInfo{}
}
