// Package classify decides whether a candidate residue pair is a base pair
// by running an ordered chain of geometric filters, a short-contact probe
// and a stacking veto, and computes the step parameters of accepted pairs.
package classify

import (
	"github.com/golang/geo/r3"

	"rnapairs-core/geom"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Status codes.
const (
	Rejected   = 0
	Qualifies  = 1 // network mode only
	Canonical  = 2
	NonCanonic = -1
)

// Canonical Watson-Crick geometry bounds.
const (
	WCMaxOrigin   = 2.5
	WCMaxAngle    = 40.0
	WCMaxVertical = 1.5
	WCBonus       = 1.5
)

// Fixed vetoes.
const (
	coplanarAngle     = 10.0
	coplanarVertical  = 2.2
	neighbourVertical = 2.0
)

// Thresholds are the six tunable limits of the filter chain.
type Thresholds struct {
	ShortContact  float64 `json:"short_contact"`
	MaxOrigin     float64 `json:"max_origin"`
	MaxVertical   float64 `json:"max_vertical"`
	MaxPlaneAngle float64 `json:"max_plane_angle"`
	MinGlyDist    float64 `json:"min_gly_dist"`
	StackConst    float64 `json:"stack_const"`
}

// DefaultThresholds mirror the classic analysis defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortContact:  4.0,
		MaxOrigin:     15.0,
		MaxVertical:   2.5,
		MaxPlaneAngle: 65.0,
		MinGlyDist:    4.5,
		StackConst:    4.5,
	}
}

// Stage names the last filter a pair reached.
type Stage int

const (
	StageVertical Stage = iota + 1
	StageAngle
	StageCoplanar
	StageGlycosidic
	StageNeighbour
	StageNetwork
	StageOrigin
	StageContact
	StageStacked
	StageAccepted
)

var stageNames = [...]string{
	StageVertical:   "vertical",
	StageAngle:      "angle",
	StageCoplanar:   "coplanar",
	StageGlycosidic: "glycosidic",
	StageNeighbour:  "neighbour",
	StageNetwork:    "network",
	StageOrigin:     "origin",
	StageContact:    "contact",
	StageStacked:    "stacked",
	StageAccepted:   "accepted",
}

func (s Stage) String() string {
	if s > 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "none"
}

// Descriptors are the intermediate geometric measurements of a pair. Fields
// past the stage that rejected the pair stay zero.
type Descriptors struct {
	Dorg       float64   `json:"dorg"`
	Dv         float64   `json:"dv"`
	PlaneAngle float64   `json:"plane_angle"`
	DNN        float64   `json:"dNN"`
	Score      float64   `json:"score"`
	MidOrigin  r3.Vector `json:"-"`
}

// Result is the classification record of one pair.
type Result struct {
	Status      int
	Stage       Stage
	Descriptors Descriptors
	// WCOrientation is set when x axes are parallel and y and z axes are
	// antiparallel, the relative orientation of a Watson-Crick pair.
	WCOrientation bool
	// Stacked is the stacking detector's verdict for pairs vetoed as stacks.
	Stacked int
	// Step, MidFrame and the two z axes are filled for accepted pairs.
	Step     geom.Step
	MidFrame geom.Frame
	ZI, ZJ   r3.Vector
}

// Paired reports a base-pair status.
func (r Result) Paired() bool { return r.Status == Canonical || r.Status == NonCanonic }

// Classifier holds the thresholds and services shared by every evaluation.
// It is read-only and safe for concurrent use.
type Classifier struct {
	T        Thresholds
	Services primitives.Set
}

// New returns a Classifier.
func New(t Thresholds, s primitives.Set) *Classifier {
	return &Classifier{T: t, Services: s}
}

var wcSet = map[string]bool{
	"XX": true, "AT": true, "AU": true, "TA": true, "UA": true,
	"GC": true, "CG": true, "IC": true, "CI": true,
}

// IsWatsonCrick reports whether the two base letters, in either case, form a
// canonical pair code.
func IsWatsonCrick(bi, bj byte) bool {
	return wcSet[string([]byte{upper(bi), upper(bj)})]
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// Classify runs the filter chain on residues ri and rj. In network mode it
// stops after the score and reports Qualifies or Rejected.
func (c *Classifier) Classify(ri, rj *residue.Residue, network bool) Result {
	var res Result
	if ri.Index == rj.Index {
		return res
	}
	d := &res.Descriptors
	t := c.T

	zi, zj := ri.Frame.Z(), rj.Frame.Z()
	dorg := rj.Origin.Sub(ri.Origin)
	d.Dorg = dorg.Norm()

	res.Stage = StageVertical
	d.Dv = geom.VerticalOffset(ri.Origin, zi, rj.Origin, zj)
	if d.Dv > t.MaxVertical {
		return res
	}

	res.Stage = StageAngle
	d.PlaneAngle = geom.FoldedAngle(zi, zj)
	if d.PlaneAngle > t.MaxPlaneAngle {
		return res
	}

	res.Stage = StageCoplanar
	if d.PlaneAngle <= coplanarAngle && d.Dv >= coplanarVertical {
		return res
	}

	res.Stage = StageGlycosidic
	d.DNN = rj.GlyProxy.Sub(ri.GlyProxy).Norm()
	if d.DNN < t.MinGlyDist {
		return res
	}

	res.Stage = StageNeighbour
	if rj.Index == ri.Index+1 && d.Dv >= neighbourVertical {
		return res
	}

	d.Score = d.Dorg + 2*d.Dv

	if network {
		res.Stage = StageNetwork
		if d.Dv <= t.MaxVertical && d.PlaneAngle <= t.MaxPlaneAngle && d.DNN >= t.MinGlyDist {
			res.Status = Qualifies
		}
		return res
	}

	res.Stage = StageOrigin
	if d.Dorg > t.MaxOrigin {
		return res
	}

	res.Stage = StageContact
	if !c.shortContact(ri, rj) {
		return res
	}

	res.Stage = StageStacked
	if k := c.Services.Stack(ri, rj, t.StackConst); k > 0 {
		res.Stacked = k
		return res
	}

	res.Stage = StageAccepted
	dirX := ri.Frame.X().Dot(rj.Frame.X())
	dirY := ri.Frame.Y().Dot(rj.Frame.Y())
	dd := zi.Dot(zj)
	res.WCOrientation = dirX > 0 && dirY < 0 && dd < 0

	res.Status = NonCanonic
	if res.WCOrientation && d.Dorg <= WCMaxOrigin && IsWatsonCrick(ri.Base, rj.Base) &&
		d.PlaneAngle <= WCMaxAngle && d.Dv < WCMaxVertical {
		res.Status = Canonical
		d.Score -= WCBonus
	}

	res.ZI, res.ZJ = zi, zj
	res.Step, res.MidFrame, d.MidOrigin = c.Services.Step(rj.Frame.Flipped(), rj.Origin, ri.Frame, ri.Origin)
	return res
}

// shortContact finds one pair of base ring N/O atoms within the short-contact
// distance where at least one side may carry a hydrogen.
func (c *Classifier) shortContact(ri, rj *residue.Residue) bool {
	lim := c.T.ShortContact
	for _, am := range ri.Atoms {
		if !residue.IsBaseRingPolar(am.Name) {
			continue
		}
		hm := c.Services.Hydrogens(ri, am.Name)
		for _, an := range rj.Atoms {
			if !residue.IsBaseRingPolar(an.Name) {
				continue
			}
			if hm.WithoutH && c.Services.Hydrogens(rj, an.Name).WithoutH {
				continue
			}
			if am.Pos.Sub(an.Pos).Norm() <= lim {
				return true
			}
		}
	}
	return false
}
