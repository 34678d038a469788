// Package native implements the primitives services in pure Go.
package native

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/primitives"
)

// Solver wraps geom.StepParams as a primitives.StepSolver.
type Solver struct{}

func (Solver) Step(f1 geom.Frame, o1 r3.Vector, f2 geom.Frame, o2 r3.Vector) (geom.Step, geom.Frame, r3.Vector) {
	return geom.StepParams(f1, o1, f2, o2)
}

// Services returns the full native service set.
func Services() primitives.Set {
	return primitives.Set{
		HCatalog:         HCatalog{},
		StackDetector:    DefaultStacker,
		EdgeLookup:       EdgeLookup{},
		SugarRefiner:     SugarRefiner{},
		CisTransDetector: CisTrans{},
		StepSolver:       Solver{},
	}
}
