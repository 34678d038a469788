package pretty

import (
	"fmt"
	"math"
	"strings"

	"rnapairs-core/engine"
)

// Options control the ASCII rendering of a pair's hydrogen bonds.
type Options struct {
	// Ångström per dash of the bond bar. If <=0, use default (0.25).
	Scale float64

	// Bonds longer than this are drawn with WeakGlyph ends.
	StrongMax float64

	// Show at most this many bonds; 0 = all.
	MaxBonds int

	// Indent of the bond rows.
	Indent int

	// Glyphs
	DashGlyph   string // default "-"
	StrongGlyph string // default "|"
	WeakGlyph   string // default "¦"
}

// DefaultOptions draw every bond, one dash per quarter Ångström.
var DefaultOptions = Options{
	Scale:       0.25,
	StrongMax:   3.4,
	Indent:      4,
	DashGlyph:   "-",
	StrongGlyph: "|",
	WeakGlyph:   "¦",
}

func (o Options) withDefaults() Options {
	d := DefaultOptions
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.StrongMax <= 0 {
		o.StrongMax = d.StrongMax
	}
	if o.Indent < 0 {
		o.Indent = 0
	}
	if o.DashGlyph == "" {
		o.DashGlyph = d.DashGlyph
	}
	if o.StrongGlyph == "" {
		o.StrongGlyph = d.StrongGlyph
	}
	if o.WeakGlyph == "" {
		o.WeakGlyph = d.WeakGlyph
	}
	return o
}

// label is the LW type, or the kind for records without one.
func label(r engine.PairRecord) string {
	if r.Type != "" {
		return r.Type
	}
	return string(r.Kind)
}

// RenderPairWithOptions draws the pair header and one bar per hydrogen
// bond, its length proportional to the donor-acceptor distance:
//
//	A:1 G  W/Wcis  C B:8
//	      N1 |------------| N3   2.90
func RenderPairWithOptions(r engine.PairRecord, opt Options) string {
	opt = opt.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d%s %s  %s  %s %s:%d%s\n",
		r.I.Chain, r.I.Seq, r.I.Ins, r.I.Base, label(r), r.J.Base, r.J.Chain, r.J.Seq, r.J.Ins)

	pad := strings.Repeat(" ", opt.Indent)
	for k, h := range r.HBonds {
		if opt.MaxBonds > 0 && k == opt.MaxBonds {
			fmt.Fprintf(&b, "%s... %d more\n", pad, len(r.HBonds)-k)
			break
		}
		end := opt.StrongGlyph
		if h.Dist > opt.StrongMax {
			end = opt.WeakGlyph
		}
		n := int(math.Round(h.Dist / opt.Scale))
		fmt.Fprintf(&b, "%s%4s %s%s%s %-4s %.2f\n",
			pad, strings.TrimSpace(h.AtomI), end, strings.Repeat(opt.DashGlyph, n), end, strings.TrimSpace(h.AtomJ), h.Dist)
	}
	return b.String()
}

// RenderPair draws r with DefaultOptions.
func RenderPair(r engine.PairRecord) string {
	return RenderPairWithOptions(r, DefaultOptions)
}
