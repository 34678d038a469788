// internal/output/rows.go
package output

import (
	"fmt"
	"io"

	"rnapairs-core/engine"
)

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FormatRowTSV returns the TSV columns of one record (no trailing newline).
func FormatRowTSV(source string, r engine.PairRecord) string {
	d, s := r.Descriptors, r.Step
	lw := r.Type
	if lw == "" {
		lw = string(r.Kind)
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d%s\t%s\t%s\t%d%s\t%s\t%s\t%d\t%s\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\t%d",
		source, r.I.Index, r.J.Index,
		r.I.Chain, r.I.Seq, r.I.Ins, r.I.Base,
		r.J.Chain, r.J.Seq, r.J.Ins, r.J.Base,
		r.Kind, r.Status, lw, boolInt(r.Best), r.Syn,
		d.Score, d.Dorg, d.Dv, d.PlaneAngle, d.DNN,
		s.Shift, s.Slide, s.Rise, s.Tilt, s.Roll, s.Twist,
		len(r.HBonds),
	)
}

// WriteTSVBatch writes one row per record.
func WriteTSVBatch(w io.Writer, b engine.Batch) error {
	for _, r := range b.Records {
		if _, err := fmt.Fprintln(w, FormatRowTSV(b.Source, r)); err != nil {
			return err
		}
	}
	return nil
}
