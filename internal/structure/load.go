// internal/structure/load.go
package structure

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/golang/geo/r3"
	chem "github.com/rmera/gochem"

	"rnapairs-core/frame"
	"rnapairs-core/native"
	"rnapairs-core/residue"
)

// ErrNoResidues is returned when a file holds no usable nucleotide.
var ErrNoResidues = errors.New("structure: no nucleotide residues")

// RawAtom is one atom record of the first model.
type RawAtom struct {
	Serial  int
	Name    string
	ResName string
	ResSeq  int
	Chain   string
	Element string
	Pos     r3.Vector
}

// ReadPDB reads the atoms of the first model of a PDB file.
func ReadPDB(path string) ([]RawAtom, error) {
	mol, err := chem.PDBFileRead(path, false)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(mol.Coords) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, ErrNoResidues)
	}
	c := mol.Coords[0]
	out := make([]RawAtom, 0, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		a := mol.Atom(i)
		out = append(out, RawAtom{
			Serial:  a.ID,
			Name:    a.Name,
			ResName: a.MolName,
			ResSeq:  a.MolID,
			Chain:   a.Chain,
			Element: a.Symbol,
			Pos:     r3.Vector{X: c.At(i, 0), Y: c.At(i, 1), Z: c.At(i, 2)},
		})
	}
	return out, nil
}

// Load reads a PDB file and builds its residue arena. Warnings name the
// residues that were dropped.
func Load(path string) (*residue.Structure, []string, error) {
	atoms, err := ReadPDB(path)
	if err != nil {
		return nil, nil, err
	}
	s, warns, err := Build(path, atoms)
	if err != nil {
		return nil, warns, fmt.Errorf("%s: %w", path, err)
	}
	return s, warns, nil
}

type group struct {
	chain   string
	seq     int
	name    string
	serial  int
	base    byte
	atoms   []residue.Atom
	ordinal int
}

// Build turns raw atoms into a Structure: water and hydrogens are dropped,
// names are canonicalised, bases are identified, single-residue chains are
// dropped, residues are ordered by their first atom serial and every base
// gets its reference frame and χ torsion.
func Build(source string, atoms []RawAtom) (*residue.Structure, []string, error) {
	var (
		groups []*group
		cur    *group
	)
	for _, a := range atoms {
		if IsWater(a.ResName) || isHydrogen(a) {
			continue
		}
		chain := strings.TrimSpace(a.Chain)
		if chain == "" {
			chain = "_"
		}
		if cur == nil || cur.chain != chain || cur.seq != a.ResSeq || cur.name != a.ResName {
			cur = &group{chain: chain, seq: a.ResSeq, name: a.ResName, serial: a.Serial, ordinal: len(groups)}
			groups = append(groups, cur)
		}
		cur.atoms = append(cur.atoms, residue.Atom{Name: residue.PadName(CanonicalAtom(a.Name)), Pos: a.Pos})
	}

	perChain := make(map[string]int)
	kept := groups[:0]
	for _, g := range groups {
		if b, ok := StandardBase(g.name); ok {
			g.base = b
		} else if g.base = InferBase(g.atoms); g.base == 0 {
			continue
		}
		kept = append(kept, g)
		perChain[g.chain]++
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].serial != kept[j].serial {
			return kept[i].serial < kept[j].serial
		}
		return kept[i].ordinal < kept[j].ordinal
	})

	var (
		warns []string
		out   = &residue.Structure{Source: source}
	)
	for _, g := range kept {
		if perChain[g.chain] < 2 {
			continue
		}
		r := residue.New(len(out.Residues)+1, g.chain, g.seq, "", g.base, g.atoms)
		if err := frame.Fit(r); err != nil {
			warns = append(warns, fmt.Sprintf("residue %s %s dropped: %v", r.Label(), strings.TrimSpace(g.name), err))
			continue
		}
		r.Chi, r.HasChi = native.Chi(r)
		out.Residues = append(out.Residues, r)
	}
	out.Reindex()

	if out.Len() == 0 {
		return nil, warns, ErrNoResidues
	}
	return out, warns, nil
}

func isHydrogen(a RawAtom) bool {
	if e := strings.ToUpper(strings.TrimSpace(a.Element)); e != "" {
		return e == "H" || e == "D"
	}
	n := strings.TrimLeft(strings.TrimSpace(a.Name), "0123456789")
	return strings.HasPrefix(strings.ToUpper(n), "H")
}
