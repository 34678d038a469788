// internal/pipeline/pairer.go
package pipeline

import (
	"rnapairs-core/candidate"
	"rnapairs-core/engine"
	"rnapairs-core/residue"
)

// Pairer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Pairer interface {
	Candidates(s *residue.Structure) []candidate.Pair
	ClassifyPair(s *residue.Structure, i, j int) (engine.PairRecord, bool)
}

// Loader reads one structure file. Warnings are non-fatal notes about the
// input, such as residues that could not be used.
type Loader func(path string) (*residue.Structure, []string, error)
