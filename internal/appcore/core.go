// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"rnapairs-core/engine"
	"rnapairs-core/native"
	"rnapairs-core/residue"

	"rnapairs/internal/cmdutil"
	"rnapairs/internal/pipeline"
	"rnapairs/internal/profile"
	"rnapairs/internal/runutil"
	"rnapairs/internal/writers"
)

type Options struct {
	Files  []string
	Engine engine.Config

	Threads int

	Quiet           bool
	NoMatchExitCode int
	ProfileJSON     string
}

type VisitorFunc[T any] func(engine.Batch) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run classifies every structure in o.Files and streams the visited batches
// to the writer. count reports how many records a visited value holds; a
// run that keeps none returns o.NoMatchExitCode.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	load pipeline.Loader,
	visit VisitorFunc[T],
	count func(T) int,
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	if len(o.Files) == 0 {
		fmt.Fprintln(stderr, "error: no structure files given")
		return 2
	}
	for _, w := range runutil.ValidateEngine(o.Engine) {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}

	thr := runutil.EffectiveThreads(o.Threads)

	var rec *profile.Recorder
	if o.ProfileJSON != "" {
		rec = profile.New()
	}
	eng := engine.New(o.Engine, rec.Wrap(native.Services()))

	// Load failures are reported as they happen; the pipeline still
	// returns the first one so the exit code reflects it.
	var loadErr error
	loadAndReport := func(path string) (*residue.Structure, []string, error) {
		s, warns, err := load(path)
		if err != nil {
			if loadErr == nil {
				loadErr = err
			}
			fmt.Fprintln(stderr, err)
		}
		return s, warns, err
	}

	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, Profile: rec},
		o.Files,
		loadAndReport,
		eng,
		func(b engine.Batch) (bool, T, error) {
			for _, w := range b.Warnings {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s", b.Source, w)
			}
			for _, r := range b.Records {
				if r.Warning != "" {
					cmdutil.Warnf(stderr, o.Quiet, "%s: %s", b.Source, r.Warning)
				}
			}
			return visit(b)
		},
		count,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if o.ProfileJSON != "" {
		if err := rec.WriteJSON(o.ProfileJSON); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		if perr != loadErr {
			fmt.Fprintln(stderr, perr)
		}
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
