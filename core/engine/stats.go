// core/engine/stats.go
package engine

// BestPartners sets Best on every base-pair record that has the lowest score
// among the pairs of both of its residues. Ties go to the earlier record.
func BestPartners(recs []PairRecord) {
	best := make(map[int]int)
	take := func(res, k int) {
		cur, ok := best[res]
		if !ok || recs[k].Descriptors.Score < recs[cur].Descriptors.Score {
			best[res] = k
		}
	}
	for k := range recs {
		recs[k].Best = false
		if recs[k].Kind != KindPair {
			continue
		}
		take(recs[k].I.Index, k)
		take(recs[k].J.Index, k)
	}
	for k := range recs {
		if recs[k].Kind != KindPair {
			continue
		}
		recs[k].Best = best[recs[k].I.Index] == k && best[recs[k].J.Index] == k
	}
}

// Stats summarises one structure's records.
type Stats struct {
	Bases     int            `json:"bases"`
	Pairs     int            `json:"pairs"`
	Canonical int            `json:"canonical"`
	Stacked   int            `json:"stacked"`
	Network   int            `json:"network,omitempty"`
	Truncated int            `json:"truncated,omitempty"`
	Types     map[string]int `json:"types,omitempty"`
}

// Summarize counts records by kind and LW type.
func Summarize(bases int, recs []PairRecord) Stats {
	st := Stats{Bases: bases}
	for _, r := range recs {
		switch r.Kind {
		case KindStacked:
			st.Stacked++
			continue
		case KindNetwork:
			st.Network++
			continue
		}
		st.Pairs++
		if r.Canonical() {
			st.Canonical++
		}
		if r.Err != nil || r.Warning != "" {
			st.Truncated++
		}
		if r.Type != "" {
			if st.Types == nil {
				st.Types = make(map[string]int)
			}
			st.Types[r.Type]++
		}
	}
	return st
}

// Add folds o into s, for multi-structure runs.
func (s *Stats) Add(o Stats) {
	s.Bases += o.Bases
	s.Pairs += o.Pairs
	s.Canonical += o.Canonical
	s.Stacked += o.Stacked
	s.Network += o.Network
	s.Truncated += o.Truncated
	for t, n := range o.Types {
		if s.Types == nil {
			s.Types = make(map[string]int)
		}
		s.Types[t] += n
	}
}

// Batch is the outcome for one structure file. Records are ordered by
// (I, J) and carry their best-partner flags.
type Batch struct {
	Source   string
	Bases    int
	Records  []PairRecord
	Warnings []string
}

// Stats summarises the batch.
func (b Batch) Stats() Stats { return Summarize(b.Bases, b.Records) }
