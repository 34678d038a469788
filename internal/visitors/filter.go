// internal/visitors/filter.go
package visitors

import "rnapairs-core/engine"

// Filter drops records outside the requested chains and, unless Stacked is
// set, the stacked records. Batches are always kept so that empty
// structures still show up in the output.
type Filter struct {
	Chains  map[string]bool // empty = all chains
	Stacked bool
}

func (f Filter) want(r engine.PairRecord) bool {
	if r.Kind == engine.KindStacked && !f.Stacked {
		return false
	}
	if len(f.Chains) > 0 && (!f.Chains[r.I.Chain] || !f.Chains[r.J.Chain]) {
		return false
	}
	return true
}

func (f Filter) Visit(b engine.Batch) (keep bool, out engine.Batch, err error) {
	recs := make([]engine.PairRecord, 0, len(b.Records))
	for _, r := range b.Records {
		if f.want(r) {
			recs = append(recs, r)
		}
	}
	b.Records = recs
	return true, b, nil
}
