package cmdutil

import (
	"context"

	"rnapairs-core/engine"

	"rnapairs/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of records in the kept batches and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	load pipeline.Loader,
	p pipeline.Pairer,
	visit func(engine.Batch) (bool, T, error),
	count func(T) int,
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachStructure(ctx, cfg, files, load, p, func(b engine.Batch) error {
		keep, out, vErr := visit(b)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total += count(out)
		return nil
	})
	return total, err
}
