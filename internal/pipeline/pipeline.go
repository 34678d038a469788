// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"rnapairs-core/engine"
	"rnapairs-core/residue"

	"rnapairs/internal/profile"
)

// Config controls the classification pipeline.
type Config struct {
	Threads int               // number of worker goroutines (>=1)
	Profile *profile.Recorder // optional; nil disables counters and timings
}

// ClassifyAll evaluates every candidate pair of s on cfg.Threads workers.
// The result does not depend on the worker count.
func ClassifyAll(ctx context.Context, cfg Config, s *residue.Structure, p Pairer) ([]engine.PairRecord, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	stop := cfg.Profile.Time("candidates")
	cands := p.Candidates(s)
	stop()
	cfg.Profile.Add(profile.CandidatePairs, int64(len(cands)))

	defer cfg.Profile.Time("classify")()

	type result struct {
		k   int
		rec engine.PairRecord
		ok  bool
	}
	jobs := make(chan int, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case k, ok := <-jobs:
					if !ok {
						return
					}
					c := cands[k]
					rec, keep := p.ClassifyPair(s, c.I, c.J)
					cfg.Profile.Add(profile.ClassifyCalls, 1)
					select {
					case results <- result{k: k, rec: rec, ok: keep}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: slot results by candidate position.
	var (
		cwg   sync.WaitGroup
		slots = make([]engine.PairRecord, len(cands))
		kept  = make([]bool, len(cands))
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			slots[r.k], kept[r.k] = r.rec, r.ok
		}
	}()

	// Feed work
feed:
	for k := range cands {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- k:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []engine.PairRecord
	for k, ok := range kept {
		if ok {
			out = append(out, slots[k])
		}
	}
	engine.BestPartners(out)
	return out, nil
}

// ForEachStructure loads each file in turn, classifies it and calls visit
// with its engine.Batch. A file that fails to load does not stop the others; the
// first error (including context cancellation) is returned.
func ForEachStructure(
	ctx context.Context,
	cfg Config,
	files []string,
	load Loader,
	p Pairer,
	visit func(engine.Batch) error,
) error {
	var first error
	for _, fn := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		stop := cfg.Profile.Time("load")
		s, warns, err := load(fn)
		stop()
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}

		recs, err := ClassifyAll(ctx, cfg, s, p)
		if err != nil {
			return err
		}
		for _, r := range recs {
			switch r.Kind {
			case engine.KindPair:
				cfg.Profile.Add(profile.BasePairs, 1)
			case engine.KindStacked:
				cfg.Profile.Add(profile.Stacks, 1)
			}
		}
		if err := visit(engine.Batch{Source: fn, Bases: s.Len(), Records: recs, Warnings: warns}); err != nil {
			return err
		}
	}
	return first
}
