package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Step holds the six rigid-body parameters relating two base frames.
// Distances in Å, angles in degrees.
type Step struct {
	Shift, Slide, Rise float64
	Tilt, Roll, Twist  float64
}

// Array returns the parameters in the conventional order.
func (s Step) Array() [6]float64 {
	return [6]float64{s.Shift, s.Slide, s.Rise, s.Tilt, s.Roll, s.Twist}
}

// StepParams computes the step parameters taking frame f1 at o1 onto frame
// f2 at o2, along with the middle frame and origin they are expressed in.
//
// The two z axes are rotated half way towards each other about their
// common hinge; twist is the angle between the resulting y axes, and the
// tip-tilt magnitude is split into roll and tilt by the hinge's phase in the
// middle frame.
func StepParams(f1 Frame, o1 r3.Vector, f2 Frame, o2 r3.Vector) (Step, Frame, r3.Vector) {
	z1, z2 := f1.Z(), f2.Z()

	hinge := z1.Cross(z2)
	tipTilt := Magang(z1, z2)
	if hinge.Norm() < XEps && (math.Abs(tipTilt-180) < XEps || tipTilt < XEps) {
		hinge = f1.X().Add(f2.X()).Add(f1.Y()).Add(f2.Y())
	}
	hinge = Normalize(hinge)

	p1 := f1.Rotated(hinge, 0.5*tipTilt)
	p2 := f2.Rotated(hinge, -0.5*tipTilt)

	mz := p1.Z()
	y1, y2 := p1.Y(), p2.Y()
	twist := VecAng(y1, y2, mz)

	my := Normalize(y1.Add(y2))
	mx := my.Cross(mz)
	mid := Frame{mx, my, mz}
	midOrg := o1.Add(o2).Mul(0.5)

	d := o2.Sub(o1)
	phi := Deg2Rad(VecAng(hinge, my, mz))

	return Step{
		Shift: d.Dot(mx),
		Slide: d.Dot(my),
		Rise:  d.Dot(mz),
		Tilt:  tipTilt * math.Sin(phi),
		Roll:  tipTilt * math.Cos(phi),
		Twist: twist,
	}, mid, midOrg
}
