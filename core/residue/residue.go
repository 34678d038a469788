package residue

import (
	"fmt"

	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
)

// Residue is one nucleotide as loaded from a structure model. Residues are
// read-only once built; every pair evaluation reads them concurrently.
type Residue struct {
	Index     int    // 1-based position in the Structure
	Chain     string // chain identifier
	SeqNum    int    // author residue number
	InsCode   string // insertion code, "" when absent
	Base      byte   // one-letter code; lower case for modified bases
	Atoms     []Atom // in file order, names padded to 4 characters
	Origin    r3.Vector
	Frame     geom.Frame
	GlyProxy  r3.Vector // N9 for purines, N1 for pyrimidines
	Purine    bool
	HasFrame  bool
	Chi       float64 // glycosidic torsion, degrees
	HasChi    bool
	atomIndex map[string]int
}

// New builds a residue and indexes its atom names.
func New(index int, chain string, seq int, ins string, base byte, atoms []Atom) *Residue {
	r := &Residue{Index: index, Chain: chain, SeqNum: seq, InsCode: ins, Base: base, Atoms: atoms}
	r.atomIndex = make(map[string]int, len(atoms))
	for k, a := range atoms {
		if _, dup := r.atomIndex[a.Name]; !dup {
			r.atomIndex[a.Name] = k
		}
	}
	return r
}

// Atom looks up an atom by its padded name.
func (r *Residue) Atom(name string) (Atom, bool) {
	if k, ok := r.atomIndex[name]; ok {
		return r.Atoms[k], true
	}
	return Atom{}, false
}

// UpperBase is the base letter folded to upper case.
func (r *Residue) UpperBase() byte {
	b := r.Base
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}

// Label is "A:12" or "A:12B" with insertion code.
func (r *Residue) Label() string {
	return fmt.Sprintf("%s:%d%s", r.Chain, r.SeqNum, r.InsCode)
}

// Structure is the ordered residue arena for one model. Index k of
// Residues holds the residue with Index k+1.
type Structure struct {
	Source   string
	Residues []*Residue
}

// Len is the residue count.
func (s *Structure) Len() int { return len(s.Residues) }

// At returns the residue with the given 1-based index.
func (s *Structure) At(i int) *Residue { return s.Residues[i-1] }

// Origins returns every residue origin in index order.
func (s *Structure) Origins() []r3.Vector {
	out := make([]r3.Vector, len(s.Residues))
	for k, r := range s.Residues {
		out[k] = r.Origin
	}
	return out
}

// ZAxes returns every residue's frame z axis in index order.
func (s *Structure) ZAxes() []r3.Vector {
	out := make([]r3.Vector, len(s.Residues))
	for k, r := range s.Residues {
		out[k] = r.Frame.Z()
	}
	return out
}

// Reindex assigns consecutive 1-based indices in slice order.
func (s *Structure) Reindex() {
	for k, r := range s.Residues {
		r.Index = k + 1
	}
}
