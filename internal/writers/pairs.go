// internal/writers/pairs.go
package writers

import (
	"fmt"
	"io"

	"rnapairs-core/engine"

	"rnapairs/internal/common"
	"rnapairs/internal/output"
)

func init() {
	RegisterBatch(output.FormatText, output.WriteTextBatch)
	RegisterBatch(output.FormatTSV, output.WriteTSVBatch)
	RegisterBatch(output.FormatPretty, output.WritePrettyBatch)
}

// Options select the rendering of a run.
type Options struct {
	Format    string
	SortBy    string // "", "index" or "score"
	Header    bool   // TSV header row
	Pretty    bool   // text only: draw hydrogen bonds
	RunID     string // json only
	Generator string // json only
}

// StartPairWriter spins up a writer goroutine consuming one engine.Batch per
// structure.
func StartPairWriter(out io.Writer, o Options, bufSize int) (chan<- engine.Batch, <-chan error) {
	if o.Format == output.FormatJSONL {
		return StartPairJSONLWriter(out, o.SortBy, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Batch, bufSize)
	errCh := make(chan error, 1)

	format := o.Format
	if o.Pretty && format == output.FormatText {
		format = output.FormatPretty
	}

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []engine.Batch
			for b := range in {
				common.SortRecords(b.Records, o.SortBy)
				buf = append(buf, b)
			}
			err = output.WriteJSON(out, output.Document(o.RunID, o.Generator, buf))

		default:
			if _, ok := BatchWriters[format]; !ok {
				err = fmt.Errorf("unknown pairs format %q (no writer registered)", format)
				break
			}
			if o.Header && o.Format == output.FormatTSV {
				_, err = fmt.Fprintln(out, output.TSVHeader)
			}
			for b := range in {
				if err != nil {
					continue
				}
				common.SortRecords(b.Records, o.SortBy)
				err = WriteBatch(format, out, b)
			}
		}
		// Drain so producers never block on a failed writer.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
