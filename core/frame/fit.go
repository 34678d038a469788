// Package frame places the standard reference frame on each base by
// least-squares superposition of an ideal base onto the observed ring atoms.
package frame

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	matrix "github.com/skelterjohn/go.matrix"

	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

// MinAtoms is the fewest matched base atoms a fit accepts.
const MinAtoms = 3

var (
	ErrUnknownBase = errors.New("frame: no template for base")
	ErrTooFewAtoms = errors.New("frame: too few base atoms")
)

// Fit sets Origin, Frame, GlyProxy, Purine and HasFrame on r. On error r is
// left without a frame.
func Fit(r *residue.Residue) error {
	t, ok := templates[r.UpperBase()]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownBase, r.Base)
	}
	r.Purine = t.purine

	var ref, obs []r3.Vector
	for _, a := range t.atoms {
		// C1' anchors the sugar; the fit uses base atoms only.
		if a.name == " C1'" {
			continue
		}
		if at, ok := r.Atom(a.name); ok {
			ref = append(ref, r3.Vector{X: a.x, Y: a.y})
			obs = append(obs, at.Pos)
		}
	}
	if len(ref) < MinAtoms {
		return fmt.Errorf("%w: %s has %d", ErrTooFewAtoms, r.Label(), len(ref))
	}

	rot, err := kabsch(ref, obs)
	if err != nil {
		return fmt.Errorf("frame: fit %s: %w", r.Label(), err)
	}
	f := geom.Frame{
		geom.Normalize(r3.Vector{X: rot.Get(0, 0), Y: rot.Get(1, 0), Z: rot.Get(2, 0)}),
		geom.Normalize(r3.Vector{X: rot.Get(0, 1), Y: rot.Get(1, 1), Z: rot.Get(2, 1)}),
		geom.Normalize(r3.Vector{X: rot.Get(0, 2), Y: rot.Get(1, 2), Z: rot.Get(2, 2)}),
	}
	r.Frame = f
	r.Origin = centroid(obs).Sub(f.Apply(centroid(ref)))
	r.HasFrame = true

	gly := " N1 "
	if t.purine {
		gly = " N9 "
	}
	if a, ok := r.Atom(gly); ok {
		r.GlyProxy = a.Pos
	} else {
		r.GlyProxy = r.Origin
	}
	return nil
}

func centroid(v []r3.Vector) r3.Vector {
	var c r3.Vector
	for _, p := range v {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(v)))
}

// kabsch returns the proper rotation R minimising |R*ref - obs| after both
// sets are centred. Ideal bases are planar, so the sign correction is taken
// from det(V*U^T) rather than from the rank-deficient covariance.
func kabsch(ref, obs []r3.Vector) (*matrix.DenseMatrix, error) {
	n := len(ref)
	cr, co := centroid(ref), centroid(obs)
	xs := make([]float64, 3*n)
	ys := make([]float64, 3*n)
	for k := 0; k < n; k++ {
		a := ref[k].Sub(cr)
		b := obs[k].Sub(co)
		xs[k], xs[k+n], xs[k+2*n] = a.X, a.Y, a.Z
		ys[k], ys[k+n], ys[k+2*n] = b.X, b.Y, b.Z
	}
	X := matrix.MakeDenseMatrix(xs, 3, n)
	Y := matrix.MakeDenseMatrix(ys, 3, n)

	C, err := X.TimesDense(Y.Transpose())
	if err != nil {
		return nil, err
	}
	U, _, V, err := C.SVD()
	if err != nil {
		return nil, err
	}
	UT := U.Transpose()
	VUT, err := V.TimesDense(UT)
	if err != nil {
		return nil, err
	}
	if VUT.Det() >= 0 {
		return VUT, nil
	}
	adjust := matrix.MakeDenseMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, -1,
	}, 3, 3)
	Vadj, err := V.TimesDense(adjust)
	if err != nil {
		return nil, err
	}
	return Vadj.TimesDense(UT)
}
