// Package candidate proposes the residue pairs worth classifying: pairs whose
// origins lie within a cutoff of each other and whose base planes are
// roughly coplanar, plus a rescue partner and a long-range tail partner per
// residue.
package candidate

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
)

const (
	// DefaultMaxCells bounds the grid; beyond it the search goes exhaustive.
	DefaultMaxCells = 2_000_000
	// RescueBand is how far past dvMax a neighbour still triggers a rescue.
	RescueBand = 0.3

	eps = 1e-9
)

// Pair is a candidate (I, J) with 1-based residue indices and I < J.
type Pair struct {
	I, J int
}

// Options tune the search. The zero value uses the grid with the default
// cell ceiling and the coplanarity filter.
type Options struct {
	// MaxCells overrides DefaultMaxCells when > 0. Tests force the
	// exhaustive path by setting it to 1.
	MaxCells int
	// KeepMisaligned keeps every within-cutoff partner regardless of its
	// vertical offset, the way the legacy finder did.
	KeepMisaligned bool
}

// Find returns the candidate pairs for residues with the given origins and z
// axes, ordered by I then J. It returns nil for fewer than two residues,
// mismatched inputs or non-positive radii.
func Find(origins, zAxes []r3.Vector, cutoff, dvMax float64, opts Options) []Pair {
	n := len(origins)
	if n <= 1 || len(zAxes) != n || !(cutoff > 0) || !(dvMax > 0) {
		return nil
	}
	s := &search{org: origins, z: zAxes, cutoff2: cutoff*cutoff + eps, dvMax: dvMax, opts: opts}

	maxCells := opts.MaxCells
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	g, ok := newGrid(origins, cutoff, maxCells)

	var out []Pair
	near := make([]int, 0, 64)
	for i := 0; i < n-1; i++ {
		near = near[:0]
		if ok {
			near = g.neighbours(s, i, near)
		} else {
			near = s.scan(i, near)
		}
		for _, j := range s.partners(i, near) {
			out = append(out, Pair{I: i + 1, J: j + 1})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DV is the vertical offset between origins[i] and origins[j] measured along
// the bisector of their z axes. Unlike Pair, i and j are 0-based slice
// indices: residue n of a structure is at index n-1.
func DV(origins, zAxes []r3.Vector, i, j int) float64 {
	return geom.VerticalOffset(origins[i], zAxes[i], origins[j], zAxes[j])
}

type search struct {
	org, z  []r3.Vector
	cutoff2 float64
	dvMax   float64
	opts    Options
}

func (s *search) dv(i, j int) float64 { return DV(s.org, s.z, i, j) }

func (s *search) within(i, j int) bool {
	return s.org[i].Sub(s.org[j]).Norm2() <= s.cutoff2
}

// scan is the exhaustive neighbour search.
func (s *search) scan(i int, dst []int) []int {
	for j := i + 1; j < len(s.org); j++ {
		if s.within(i, j) {
			dst = append(dst, j)
		}
	}
	return dst
}

// partners turns the spatial neighbours of i into its sorted, unique partner
// list: coplanar neighbours, rescue partners for neighbours just outside the
// tolerance and the furthest-index coplanar residue.
func (s *search) partners(i int, near []int) []int {
	sort.Ints(near)
	near = dedup(near)

	keep := make([]int, 0, len(near)+2)
	var extra []int
	for _, j := range near {
		d := s.dv(i, j)
		if s.opts.KeepMisaligned || d <= s.dvMax {
			keep = append(keep, j)
		}
		if d > s.dvMax && d <= s.dvMax+RescueBand {
			for k := j - 1; k > i; k-- {
				if s.dv(i, k) <= s.dvMax {
					extra = append(extra, k)
					break
				}
			}
		}
	}
	keep = append(keep, extra...)

	for j := len(s.org) - 1; j > i; j-- {
		if s.dv(i, j) <= s.dvMax {
			keep = append(keep, j)
			break
		}
	}

	sort.Ints(keep)
	return dedup(keep)
}

func dedup(v []int) []int {
	if len(v) < 2 {
		return v
	}
	w := 1
	for k := 1; k < len(v); k++ {
		if v[k] != v[w-1] {
			v[w] = v[k]
			w++
		}
	}
	return v[:w]
}

type cell [3]int64

// grid is a uniform cell list with edge length cutoff. Residues hang off
// their cell in a singly linked list (head/next).
type grid struct {
	min, max cell
	dy, dz   int
	cellOf   []cell
	head     []int
	next     []int
}

func newGrid(org []r3.Vector, size float64, maxCells int) (*grid, bool) {
	g := &grid{cellOf: make([]cell, len(org))}
	for k := 0; k < 3; k++ {
		g.min[k], g.max[k] = math.MaxInt64, math.MinInt64
	}
	for i, p := range org {
		c := cell{
			int64(math.Floor(p.X / size)),
			int64(math.Floor(p.Y / size)),
			int64(math.Floor(p.Z / size)),
		}
		g.cellOf[i] = c
		for k := 0; k < 3; k++ {
			if c[k] < g.min[k] {
				g.min[k] = c[k]
			}
			if c[k] > g.max[k] {
				g.max[k] = c[k]
			}
		}
	}

	count := 1
	var span [3]int
	for k := 0; k < 3; k++ {
		d := g.max[k] - g.min[k] + 1
		if d <= 0 || d > int64(maxCells) {
			return nil, false
		}
		span[k] = int(d)
		count *= span[k]
		if count <= 0 || count > maxCells {
			return nil, false
		}
	}
	g.dy, g.dz = span[1], span[2]

	g.head = make([]int, count)
	for k := range g.head {
		g.head[k] = -1
	}
	g.next = make([]int, len(org))
	for i := range org {
		idx := g.index(g.cellOf[i])
		g.next[i] = g.head[idx]
		g.head[idx] = i
	}
	return g, true
}

func (g *grid) index(c cell) int {
	ox := int(c[0] - g.min[0])
	oy := int(c[1] - g.min[1])
	oz := int(c[2] - g.min[2])
	return (ox*g.dy+oy)*g.dz + oz
}

// neighbours appends every j > i within the cutoff from the 27 cells around
// i's cell.
func (g *grid) neighbours(s *search, i int, dst []int) []int {
	ci := g.cellOf[i]
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				c := cell{ci[0] + dx, ci[1] + dy, ci[2] + dz}
				if !g.contains(c) {
					continue
				}
				for j := g.head[g.index(c)]; j != -1; j = g.next[j] {
					if j > i && s.within(i, j) {
						dst = append(dst, j)
					}
				}
			}
		}
	}
	return dst
}

func (g *grid) contains(c cell) bool {
	for k := 0; k < 3; k++ {
		if c[k] < g.min[k] || c[k] > g.max[k] {
			return false
		}
	}
	return true
}
