// core/residue/atom.go
package residue

import (
	"strings"

	"github.com/golang/geo/r3"
)

// Atom is one named position. Name is always the 4-character PDB field,
// e.g. " N1 ", " C1'", " O1P".
type Atom struct {
	Name string
	Pos  r3.Vector
}

// PadName turns a trimmed atom name into the 4-character field. Names of
// four characters are kept as is; shorter ones get one leading space and
// trailing padding, the way PDB columns 13-16 are laid out.
func PadName(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	if len(s) >= 4 {
		return s[:4]
	}
	return (" " + s + "    ")[:4]
}

// Element is the element column of a padded name (N, O, C, P, ...).
func Element(name string) byte { return at(name, 1) }

// Suffix is the last column of a padded name: '\'' for sugar atoms,
// 'P' for phosphate oxygens, ' ' for most base atoms.
func Suffix(name string) byte { return at(name, 3) }

// IsPolar reports N or O atoms.
func IsPolar(name string) bool {
	e := Element(name)
	return e == 'N' || e == 'O'
}

// IsBaseRingPolar matches names shaped like " N3 " or " O6 ": a polar
// element, a single digit position and nothing else.
func IsBaseRingPolar(name string) bool {
	if len(name) != 4 || name[0] != ' ' || name[3] != ' ' {
		return false
	}
	return IsPolar(name) && name[2] >= '0' && name[2] <= '9'
}

// IsSugarCarbon matches C1' .. C5'.
func IsSugarCarbon(name string) bool {
	return Element(name) == 'C' && Suffix(name) == '\''
}

// IsBasePolar is a polar atom that is neither a sugar nor a phosphate atom.
func IsBasePolar(name string) bool {
	s := Suffix(name)
	return IsPolar(name) && s != '\'' && s != 'P'
}

func at(name string, k int) byte {
	if k >= len(name) {
		return ' '
	}
	return name[k]
}

// Backbone oxygen names in the legacy spelling.
const (
	O1P = " O1P"
	O2P = " O2P"
	O3P = " O3'"
	O4P = " O4'"
	O5P = " O5'"
)

// IsPhosphateOxygen matches the oxygens a backbone-exclusion flag removes.
func IsPhosphateOxygen(name string) bool {
	switch name {
	case O1P, O2P, O3P, O5P:
		return true
	}
	return false
}

// IsBackboneOxygen adds the ring oxygen O4' to IsPhosphateOxygen; two such
// atoms never count as a base hydrogen bond.
func IsBackboneOxygen(name string) bool {
	return name == O4P || IsPhosphateOxygen(name)
}
