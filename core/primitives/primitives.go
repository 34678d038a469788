// Package primitives declares the chemistry and geometry services the pair
// engine consumes without owning: hydrogen cataloguing, stacking detection,
// edge lookup, sugar-edge refinement, cis/trans orientation and the base
// step solver. rnapairs-core/native implements all of them.
package primitives

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

// HydrogenInfo is what the catalogue knows about one atom. The two flags are
// independent: an atom the catalogue does not know has neither.
type HydrogenInfo struct {
	WithoutH bool
	WithH    bool
}

// HCatalog reports hydrogen attachment for an atom of a residue.
type HCatalog interface {
	Hydrogens(r *residue.Residue, atom string) HydrogenInfo
}

// StackDetector returns > 0 when the two residues stack. limit is the
// caller's stacking-discrimination constant, the largest plane separation
// still counted as a stack.
type StackDetector interface {
	Stack(ri, rj *residue.Residue, limit float64) int
}

// HBond is one atom contact between residue i and residue j.
type HBond struct {
	AtomI string
	AtomJ string
	Dist  float64
}

// EdgeLookup turns a contact list into an "E/E" edge string.
type EdgeLookup interface {
	Edges(bonds []HBond, ri, rj *residue.Residue) string
}

// SugarRefiner rewrites an "S/S" edge string.
type SugarRefiner interface {
	RefineSugar(ri, rj *residue.Residue, edges string) string
}

// CisTransDetector returns "cis" or "tran"; "" when undecidable.
type CisTransDetector interface {
	CisTrans(ri, rj *residue.Residue) string
}

// StepSolver computes the six step parameters relating two frames.
type StepSolver interface {
	Step(f1 geom.Frame, o1 r3.Vector, f2 geom.Frame, o2 r3.Vector) (geom.Step, geom.Frame, r3.Vector)
}

// Set bundles every service so callers can pass one value around.
type Set struct {
	HCatalog
	StackDetector
	EdgeLookup
	SugarRefiner
	CisTransDetector
	StepSolver
}
