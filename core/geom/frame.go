package geom

import "github.com/golang/geo/r3"

// Frame is an orthonormal basis; rows are the x, y and z axes.
type Frame [3]r3.Vector

// Identity is the lab frame.
var Identity = Frame{{X: 1}, {Y: 1}, {Z: 1}}

func (f Frame) X() r3.Vector { return f[0] }
func (f Frame) Y() r3.Vector { return f[1] }
func (f Frame) Z() r3.Vector { return f[2] }

// Rotated returns f with every axis turned by deg degrees about axis.
func (f Frame) Rotated(axis r3.Vector, deg float64) Frame {
	return Frame{Rotate(f[0], axis, deg), Rotate(f[1], axis, deg), Rotate(f[2], axis, deg)}
}

// Flipped negates the y and z axes (a 180° turn about x). Used to bring the
// second base of a pair into the same sense as the first.
func (f Frame) Flipped() Frame {
	return Frame{f[0], f[1].Mul(-1), f[2].Mul(-1)}
}

// Apply maps local coordinates into the lab frame: x*X + y*Y + z*Z.
func (f Frame) Apply(local r3.Vector) r3.Vector {
	return f[0].Mul(local.X).Add(f[1].Mul(local.Y)).Add(f[2].Mul(local.Z))
}
