// internal/structure/names.go
package structure

import "strings"

var waterNames = map[string]bool{
	"HOH": true, "WAT": true, "H2O": true, "DOD": true, "TIP": true, "TIP3": true, "SOL": true,
}

// IsWater reports solvent residue names.
func IsWater(resName string) bool {
	return waterNames[strings.ToUpper(strings.TrimSpace(resName))]
}

// standard maps residue names to their one-letter base code.
var standard = map[string]byte{
	"A": 'A', "DA": 'A', "ADE": 'A', "RA": 'A', "A5": 'A', "A3": 'A',
	"G": 'G', "DG": 'G', "GUA": 'G', "RG": 'G', "G5": 'G', "G3": 'G',
	"C": 'C', "DC": 'C', "CYT": 'C', "RC": 'C', "C5": 'C', "C3": 'C',
	"U": 'U', "DU": 'U', "URA": 'U', "RU": 'U', "U5": 'U', "U3": 'U',
	"T": 'T', "DT": 'T', "THY": 'T',
	"I": 'I', "DI": 'I', "INO": 'I',
	"PSU": 'P',
}

// StandardBase returns the base code of a standard residue name.
func StandardBase(resName string) (byte, bool) {
	b, ok := standard[strings.ToUpper(strings.TrimSpace(resName))]
	return b, ok
}

var atomAliases = map[string]string{
	"OP1": "O1P",
	"OP2": "O2P",
	"OP3": "O3P",
	"O1'": "O4'",
	"C7":  "C5M",
	"C5A": "C5M",
	"O5T": "O5'",
	"O3T": "O3'",
}

// CanonicalAtom normalises an atom name from any of the common naming
// schemes to the one the analysis uses, trimmed and upper case.
func CanonicalAtom(name string) string {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "*", "'")
	if a, ok := atomAliases[s]; ok {
		return a
	}
	return s
}
