// core/engine/engine.go
package engine

import (
	"fmt"

	"rnapairs-core/candidate"
	"rnapairs-core/classify"
	"rnapairs-core/hbond"
	"rnapairs-core/lw"
	"rnapairs-core/native"
	"rnapairs-core/primitives"
	"rnapairs-core/residue"
)

// Config holds the analysis parameters.
type Config struct {
	Cutoff         float64 // candidate search radius between origins
	DVMax          float64 // vertical tolerance of the candidate filter
	MaxCells       int     // grid budget; beyond it the search is exhaustive
	KeepMisaligned bool    // legacy candidate set: skip the vertical filter

	Thresholds classify.Thresholds

	Change   float64 // widening of the tiered H-bond thresholds
	LWDist   float64 // first-pass cutoff of the LW resolver
	Carbon   bool    // C-H...X contacts count
	Backbone bool    // phosphate oxygens count

	Network bool // report qualifying geometry only
}

// DefaultConfig returns the stock analysis parameters.
func DefaultConfig() Config {
	return Config{
		Cutoff:     15.0,
		DVMax:      4.5,
		MaxCells:   candidate.DefaultMaxCells,
		Thresholds: classify.DefaultThresholds(),
		LWDist:     3.4,
		Carbon:     true,
		Backbone:   true,
	}
}

// Engine evaluates residue pairs. It holds no per-structure state and is safe
// for concurrent use.
type Engine struct {
	cfg Config
	svc primitives.Set
	cls *classify.Classifier
	lw  *lw.Resolver
}

// New creates an Engine over the given services.
func New(c Config, s primitives.Set) *Engine {
	return &Engine{
		cfg: c,
		svc: s,
		cls: classify.New(c.Thresholds, s),
		lw:  &lw.Resolver{Services: s, Dist: c.LWDist, Carbon: c.Carbon, Backbone: c.Backbone},
	}
}

// Config returns the engine's parameters.
func (e *Engine) Config() Config { return e.cfg }

// Candidates lists the residue pairs worth classifying, ordered by (I, J).
func (e *Engine) Candidates(s *residue.Structure) []candidate.Pair {
	return candidate.Find(s.Origins(), s.ZAxes(), e.cfg.Cutoff, e.cfg.DVMax, candidate.Options{
		MaxCells:       e.cfg.MaxCells,
		KeepMisaligned: e.cfg.KeepMisaligned,
	})
}

// ClassifyPair evaluates residues i and j (1-based) of s. The boolean is false
// when the pair is neither a base pair, a stack, nor (in network mode) a
// qualifying pair.
func (e *Engine) ClassifyPair(s *residue.Structure, i, j int) (PairRecord, bool) {
	if i > j {
		i, j = j, i
	}
	if i < 1 || i == j || j > s.Len() {
		return PairRecord{}, false
	}
	ri, rj := s.At(i), s.At(j)
	if !ri.HasFrame || !rj.HasFrame {
		return PairRecord{}, false
	}

	res := e.cls.Classify(ri, rj, e.cfg.Network)
	synI, synJ := native.IsSyn(ri), native.IsSyn(rj)
	rec := PairRecord{
		Source:      s.Source,
		I:           refOf(ri, synI),
		J:           refOf(rj, synJ),
		Status:      res.Status,
		Stage:       res.Stage.String(),
		Descriptors: res.Descriptors,
		Syn:         btoi(synI) + btoi(synJ),
	}

	switch {
	case e.cfg.Network:
		if res.Status != classify.Qualifies {
			return PairRecord{}, false
		}
		rec.Kind = KindNetwork
		return rec, true
	case res.Stage == classify.StageStacked:
		rec.Kind = KindStacked
		rec.Stacked = res.Stacked
		return rec, true
	case !res.Paired():
		// Rejected candidates still get a stacking check: a stacked
		// neighbour sits about 3.4 A away and fails the vertical test.
		k := e.svc.Stack(ri, rj, e.cfg.Thresholds.StackConst)
		if k == 0 {
			return PairRecord{}, false
		}
		rec.Kind = KindStacked
		rec.Stacked = k
		return rec, true
	}

	rec.Kind = KindPair
	rec.Step = res.Step

	a := e.lw.Resolve(ri, rj)
	rec.Type, rec.Edges, rec.Orient, rec.Retried = a.Type, a.Edges, a.Orient, a.Retried

	hb := hbond.Enumerate(ri, rj, hbond.Params{
		Change:   e.cfg.Change,
		Carbon:   e.cfg.Carbon,
		Backbone: e.cfg.Backbone,
	}, e.svc)
	rec.HBonds = hb.Bonds

	err := hb.Err()
	if err == nil && a.Truncated {
		err = hbond.ErrTooManyHBonds
	}
	if err != nil {
		rec.Err = fmt.Errorf("%s-%s: %w", ri.Label(), rj.Label(), err)
		rec.Warning = rec.Err.Error()
	}
	return rec, true
}

// Analyze runs the whole structure serially and marks best partners.
func (e *Engine) Analyze(s *residue.Structure) []PairRecord {
	var out []PairRecord
	for _, p := range e.Candidates(s) {
		if rec, ok := e.ClassifyPair(s, p.I, p.J); ok {
			out = append(out, rec)
		}
	}
	BestPartners(out)
	return out
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
