// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"rnapairs-core/engine"
)

// BatchWriters maps a streaming format to its per-batch renderer.
// Register in init() blocks; whole-run formats (json) are handled by the
// writer goroutine itself.
var BatchWriters = map[string]func(w io.Writer, b engine.Batch) error{}

// RegisterBatch adds or replaces a renderer (idempotent last-wins).
func RegisterBatch(format string, fn func(io.Writer, engine.Batch) error) { BatchWriters[format] = fn }

// WriteBatch dispatches to the renderer registered for format.
func WriteBatch(format string, w io.Writer, b engine.Batch) error {
	fn, ok := BatchWriters[format]
	if !ok {
		return fmt.Errorf("unknown pairs format %q (no writer registered)", format)
	}
	return fn(w, b)
}

// IsBrokenPipe reports whether err comes from a reader that went away, as
// when output is piped into head. Such errors end a run quietly.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
