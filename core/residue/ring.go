package residue

import "github.com/golang/geo/r3"

// Ring perimeters in walking order.
var (
	PurineRing     = []string{" N9 ", " C8 ", " N7 ", " C5 ", " C6 ", " N1 ", " C2 ", " N3 ", " C4 "}
	PyrimidineRing = []string{" N1 ", " C2 ", " N3 ", " C4 ", " C5 ", " C6 "}
)

// Ring returns the ring atoms present in r, in perimeter order.
func (r *Residue) Ring() []Atom {
	names := PyrimidineRing
	if r.Purine {
		names = PurineRing
	}
	out := make([]Atom, 0, len(names))
	for _, n := range names {
		if a, ok := r.Atom(n); ok {
			out = append(out, a)
		}
	}
	return out
}

// RingCenter is the centroid of the ring atoms, or the origin when fewer
// than three ring atoms are present.
func (r *Residue) RingCenter() r3.Vector {
	ring := r.Ring()
	if len(ring) < 3 {
		return r.Origin
	}
	var c r3.Vector
	for _, a := range ring {
		c = c.Add(a.Pos)
	}
	return c.Mul(1 / float64(len(ring)))
}
