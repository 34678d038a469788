// Package hbond enumerates the atom contacts between two residues that are
// close enough to count as hydrogen bonds.
package hbond

import (
	"errors"

	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Capacity is the most bonds reported for one residue pair.
const Capacity = 512

// ErrTooManyHBonds marks a truncated enumeration.
var ErrTooManyHBonds = errors.New("hbond: too many possible H-bonds between two bases")

// Params select the enumeration mode and its filters.
type Params struct {
	// Change widens (or narrows) every tiered threshold.
	Change float64
	// Upper, when > 0, replaces the tiers with one flat cutoff over polar
	// atoms. The pair-type resolver enumerates this way.
	Upper float64
	// Carbon keeps carbon atoms in the scan.
	Carbon bool
	// Backbone keeps phosphate oxygens (O1P, O2P, O3', O5') in the scan.
	Backbone bool
}

// Result is the outcome of one enumeration. When Overflow is set, Bonds
// holds the first Capacity contacts and Count equals Capacity.
type Result struct {
	Bonds    []primitives.HBond
	Count    int
	Overflow bool
}

// Err reports ErrTooManyHBonds for a truncated result.
func (r Result) Err() error {
	if r.Overflow {
		return ErrTooManyHBonds
	}
	return nil
}

// Enumerate lists every contact between ri and rj that passes the atom
// filters and sits strictly inside its distance threshold.
func Enumerate(ri, rj *residue.Residue, p Params, cat primitives.HCatalog) Result {
	if !anyWithH(ri, cat) && !anyWithH(rj, cat) {
		return Result{}
	}
	bi, bj := ri.UpperBase(), rj.UpperBase()

	var res Result
	for _, am := range ri.Atoms {
		m := am.Name
		if !p.eligible(m, bi) {
			continue
		}
		hm := cat.Hydrogens(ri, m)
		for _, an := range rj.Atoms {
			n := an.Name
			if !p.eligible(n, bj) || pairExcluded(m, n) {
				continue
			}
			if hm.WithoutH && cat.Hydrogens(rj, n).WithoutH {
				continue
			}
			limit := p.Upper
			if limit <= 0 {
				limit = Threshold(m, n, p.Change)
			} else if !residue.IsPolar(m) || !residue.IsPolar(n) {
				continue
			}
			d := am.Pos.Sub(an.Pos).Norm()
			if d >= limit {
				continue
			}
			if res.Count == Capacity {
				res.Overflow = true
				return res
			}
			res.Bonds = append(res.Bonds, primitives.HBond{AtomI: m, AtomJ: n, Dist: d})
			res.Count++
		}
	}
	return res
}

func anyWithH(r *residue.Residue, cat primitives.HCatalog) bool {
	for _, a := range r.Atoms {
		if cat.Hydrogens(r, a.Name).WithH {
			return true
		}
	}
	return false
}

// eligible applies the per-residue atom filters.
func (p Params) eligible(name string, base byte) bool {
	e := residue.Element(name)
	if !p.Carbon && e == 'C' {
		return false
	}
	if !p.Backbone && residue.IsPhosphateOxygen(name) {
		return false
	}
	if residue.IsSugarCarbon(name) || e == 'P' {
		return false
	}
	return !ringCarbonExcluded(base, name)
}

// ringCarbonExcluded names the base ring carbons that never take part in a
// hydrogen bond for the given base.
func ringCarbonExcluded(base byte, name string) bool {
	switch base {
	case 'A', 'I':
		return name == " C4 " || name == " C5 " || name == " C6 "
	case 'G':
		return name == " C4 " || name == " C5 " || name == " C6 " || name == " C2 "
	case 'P':
		return name == " C4 " || name == " C5 "
	case 'U', 'C', 'T':
		return name == " C4 " || name == " C2 "
	}
	return false
}

// pairExcluded drops carbon-carbon and backbone-oxygen-backbone-oxygen
// contacts.
func pairExcluded(m, n string) bool {
	if residue.Element(m) == 'C' && residue.Element(n) == 'C' {
		return true
	}
	return residue.IsBackboneOxygen(m) && residue.IsBackboneOxygen(n)
}

// Threshold is the tiered distance limit for a contact between atoms m and
// n, shifted by change and capped.
func Threshold(m, n string, change float64) float64 {
	capped := func(base, max float64) float64 {
		d := base + change
		if d >= max {
			return max
		}
		return d
	}
	em, en := residue.Element(m), residue.Element(n)
	sm, sn := residue.Suffix(m), residue.Suffix(n)
	switch {
	case residue.IsBasePolar(m) && residue.IsBasePolar(n):
		return capped(3.4, 4.0)
	case em == 'C' && residue.IsBasePolar(n), en == 'C' && residue.IsBasePolar(m):
		return capped(3.6, 4.0)
	case em == 'O' && sm == '\'' && residue.IsBasePolar(n),
		en == 'O' && sn == '\'' && residue.IsBasePolar(m):
		return capped(3.4, 4.0)
	case sm == 'P' && sn != '\'' && en != 'C', sn == 'P' && sm != '\'' && em != 'C':
		return capped(3.2, 4.0)
	}
	return capped(3.1, 3.8)
}
