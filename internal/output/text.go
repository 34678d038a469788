// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"sort"

	"rnapairs-core/engine"

	"rnapairs/internal/pretty"
)

// FormatPairLine renders one record the classic way:
//
//	1_8, A:     1 G-C     8 B: W/W cis
func FormatPairLine(r engine.PairRecord) string {
	head := fmt.Sprintf("%d_%d, %s: %5d%s %s-%s %5d%s %s: ",
		r.I.Index, r.J.Index, r.I.Chain, r.I.Seq, r.I.Ins, r.I.Base, r.J.Base, r.J.Seq, r.J.Ins, r.J.Chain)
	switch r.Kind {
	case engine.KindStacked:
		return head + "stacked"
	case engine.KindNetwork:
		return head + fmt.Sprintf("network %.2f", r.Descriptors.Score)
	}
	tail := r.Edges + " " + r.Orient
	if r.Canonical() {
		tail += " canonical"
	}
	if r.Syn > 0 {
		tail += " syn"
	}
	if r.Warning != "" {
		tail += " !"
	}
	return head + tail
}

// WriteTextBatch prints one structure: the base-pair block, the stacking
// block and a summary with LW type counts.
func WriteTextBatch(w io.Writer, b engine.Batch) error {
	return writeText(w, b, nil)
}

// WritePrettyBatch is WriteTextBatch with each base pair followed by its
// hydrogen bond drawing.
func WritePrettyBatch(w io.Writer, b engine.Batch) error {
	return writeText(w, b, func(r engine.PairRecord) string {
		if r.Kind != engine.KindPair {
			return ""
		}
		return pretty.RenderPair(r)
	})
}

func writeText(w io.Writer, b engine.Batch, detail func(engine.PairRecord) string) error {
	st := b.Stats()
	ew := &errWriter{w: w}
	ew.printf("# %s\n", b.Source)
	ew.printf("BEGIN_base-pair\n")
	for _, r := range b.Records {
		if r.Kind != engine.KindStacked {
			ew.printf("%s\n", FormatPairLine(r))
			if detail != nil {
				ew.printf("%s", detail(r))
			}
		}
	}
	ew.printf("END_base-pair\n")
	if st.Stacked > 0 {
		ew.printf("BEGIN_stacking\n")
		for _, r := range b.Records {
			if r.Kind == engine.KindStacked {
				ew.printf("%s\n", FormatPairLine(r))
			}
		}
		ew.printf("END_stacking\n")
	}
	ew.printf("The total base pairs = %d (from %d bases)\n", st.Pairs, st.Bases)
	types := make([]string, 0, len(st.Types))
	for t := range st.Types {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		ew.printf("%10s %d\n", t, st.Types[t])
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}
