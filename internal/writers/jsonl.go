// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"rnapairs-core/engine"

	"rnapairs/internal/common"
	"rnapairs/internal/jsonlutil"
	"rnapairs/internal/output"
)

// StartPairJSONLWriter streams every record of every batch as one JSON line (v1).
func StartPairJSONLWriter(out io.Writer, sortBy string, bufSize int) (chan<- engine.Batch, <-chan error) {
	return jsonlutil.Start[engine.Batch](out, bufSize,
		func(enc *json.Encoder, b engine.Batch) error {
			common.SortRecords(b.Records, sortBy)
			for _, r := range b.Records {
				v := output.ToAPIPair(r)
				v.Source = b.Source
				if err := enc.Encode(v); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}
