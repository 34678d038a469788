package visitors

import "rnapairs-core/engine"

// PassThrough returns the batch unchanged.
type PassThrough struct{}

func (PassThrough) Visit(b engine.Batch) (keep bool, out engine.Batch, err error) {
	return true, b, nil
}
