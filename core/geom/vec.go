// core/geom/vec.go
// Vector primitives shared by the finder, the classifier and the step solver.
// Angles are in degrees throughout, matching the reported descriptors.

package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// XEps is the near-zero length below which a vector is left unnormalized.
const XEps = 1.0e-7

// Len returns the Euclidean length of v.
func Len(v r3.Vector) float64 { return v.Norm() }

// Dot returns a·b.
func Dot(a, b r3.Vector) float64 { return a.Dot(b) }

// Normalize scales v to unit length. Vectors no longer than XEps are
// returned unchanged.
func Normalize(v r3.Vector) r3.Vector {
	l := v.Norm()
	if l <= XEps {
		return v
	}
	return v.Mul(1 / l)
}

// Dot2Ang maps a dot product of two unit vectors to an angle in [0,180].
func Dot2Ang(d float64) float64 {
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return Rad2Deg(math.Acos(d))
}

// Magang is the unsigned angle between a and b. Zero-length input gives 0.
func Magang(a, b r3.Vector) float64 {
	la, lb := a.Norm(), b.Norm()
	if la < XEps || lb < XEps {
		return 0
	}
	return Dot2Ang(a.Dot(b) / (la * lb))
}

// Orth removes from v its component along the unit vector ref.
func Orth(v, ref r3.Vector) r3.Vector {
	return Normalize(v.Sub(ref.Mul(v.Dot(ref))))
}

// VecAng is the angle from a to b measured in the plane perpendicular to
// ref; it is negative when a×b points against ref.
func VecAng(a, b, ref r3.Vector) float64 {
	a = Orth(a, ref)
	b = Orth(b, ref)
	ang := Magang(a, b)
	if a.Cross(b).Dot(ref) < 0 {
		return -ang
	}
	return ang
}

// Rotate turns v by deg degrees about the unit axis (right-hand rule).
func Rotate(v, axis r3.Vector, deg float64) r3.Vector {
	s, c := math.Sincos(Deg2Rad(deg))
	return v.Mul(c).
		Add(axis.Cross(v).Mul(s)).
		Add(axis.Mul(axis.Dot(v) * (1 - c)))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 { return d * math.Pi / 180 }

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 { return r * 180 / math.Pi }

// Bisector is the plane normal used for the vertical-offset test: the
// difference of the two z axes when they point away from each other, their
// sum otherwise, normalized when long enough.
func Bisector(zi, zj r3.Vector) r3.Vector {
	if zi.Dot(zj) <= 0 {
		return Normalize(zi.Sub(zj))
	}
	return Normalize(zi.Add(zj))
}

// VerticalOffset is |(oj-oi)·n| for the Bisector n of zi and zj.
func VerticalOffset(oi, zi, oj, zj r3.Vector) float64 {
	return math.Abs(oj.Sub(oi).Dot(Bisector(zi, zj)))
}

// FoldedAngle folds the angle between two plane normals into [0,90].
func FoldedAngle(zi, zj r3.Vector) float64 {
	return 90 - math.Abs(Dot2Ang(zi.Dot(zj))-90)
}

// Torsion is the dihedral angle a-b-c-d in (-180,180].
func Torsion(a, b, c, d r3.Vector) float64 {
	b1 := b.Sub(a)
	b2 := c.Sub(b)
	b3 := d.Sub(c)
	x := b1.Cross(b2).Dot(b2.Cross(b3))
	y := b2.Norm() * b1.Dot(b2.Cross(b3))
	return Rad2Deg(math.Atan2(y, x))
}
