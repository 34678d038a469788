// internal/output/json.go
package output

import (
	"io"

	"rnapairs-core/engine"

	"rnapairs/internal/jsonutil"
	"rnapairs/pkg/api"
)

func toAPIResidue(r engine.ResidueRef) api.ResidueV1 {
	return api.ResidueV1{Index: r.Index, Chain: r.Chain, Seq: r.Seq, Ins: r.Ins, Base: r.Base, Syn: r.Syn}
}

// ToAPIPair converts a domain record to the stable wire schema (v1).
func ToAPIPair(r engine.PairRecord) api.BasePairV1 {
	v := api.BasePairV1{
		I:          toAPIResidue(r.I),
		J:          toAPIResidue(r.J),
		Kind:       string(r.Kind),
		Status:     r.Status,
		Canonical:  r.Canonical(),
		LW:         r.Type,
		Edges:      r.Edges,
		Orient:     r.Orient,
		Best:       r.Best,
		Syn:        r.Syn,
		Score:      r.Descriptors.Score,
		Dorg:       r.Descriptors.Dorg,
		Dv:         r.Descriptors.Dv,
		PlaneAngle: r.Descriptors.PlaneAngle,
		DNN:        r.Descriptors.DNN,
		Stacked:    r.Stacked,
		Warning:    r.Warning,
	}
	if r.Kind == engine.KindPair {
		s := r.Step
		v.Step = &api.StepV1{Shift: s.Shift, Slide: s.Slide, Rise: s.Rise, Tilt: s.Tilt, Roll: s.Roll, Twist: s.Twist}
	}
	for _, b := range r.HBonds {
		v.HBonds = append(v.HBonds, api.HBondV1{AtomI: b.AtomI, AtomJ: b.AtomJ, Dist: b.Dist})
	}
	return v
}

// ToAPIStats converts engine statistics.
func ToAPIStats(s engine.Stats) api.StatsV1 {
	v := api.StatsV1{
		Bases:     s.Bases,
		Pairs:     s.Pairs,
		Canonical: s.Canonical,
		Stacked:   s.Stacked,
		Network:   s.Network,
		Truncated: s.Truncated,
	}
	if len(s.Types) > 0 {
		v.Types = make(map[string]int, len(s.Types))
		for k, n := range s.Types {
			v.Types[k] = n
		}
	}
	return v
}

// ToAPIStructure converts one batch.
func ToAPIStructure(b engine.Batch) api.StructureV1 {
	pairs := make([]api.BasePairV1, 0, len(b.Records))
	for _, r := range b.Records {
		pairs = append(pairs, ToAPIPair(r))
	}
	return api.StructureV1{
		Source:   b.Source,
		Core:     api.CoreV1{BasePairs: pairs, Stats: ToAPIStats(b.Stats())},
		Warnings: append([]string(nil), b.Warnings...),
	}
}

// Document assembles the run document from its batches.
func Document(runID, generator string, batches []engine.Batch) api.PairsV1 {
	doc := api.PairsV1{
		SchemaVersion: api.SchemaVersion,
		RunID:         runID,
		Generator:     generator,
		Structures:    make([]api.StructureV1, 0, len(batches)),
	}
	var total engine.Stats
	for _, b := range batches {
		doc.Structures = append(doc.Structures, ToAPIStructure(b))
		total.Add(b.Stats())
	}
	doc.Stats = ToAPIStats(total)
	return doc
}

// WriteJSON writes the run document (pretty-indented).
func WriteJSON(w io.Writer, doc api.PairsV1) error {
	return jsonutil.EncodePretty(w, doc)
}
