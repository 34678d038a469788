package appcore

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"rnapairs-core/engine"
	"rnapairs-core/native"

	"rnapairs/internal/cmdutil"
	"rnapairs/internal/pipeline"
	"rnapairs/internal/writers"
)

// CandidatesHeader heads the finder-only TSV output.
const CandidatesHeader = "source\ti\tj\tchain_i\tseq_i\tbase_i\tchain_j\tseq_j\tbase_j\tdorg"

// RunCandidates runs only the spatial pair search and prints one TSV row per
// candidate pair.
func RunCandidates(parent context.Context, stdout, stderr io.Writer, o Options, header bool, load pipeline.Loader) int {
	outw := bufio.NewWriter(stdout)
	if len(o.Files) == 0 {
		fmt.Fprintln(stderr, "error: no structure files given")
		return 2
	}
	eng := engine.New(o.Engine, native.Services())

	if header {
		fmt.Fprintln(outw, CandidatesHeader)
	}
	total, failed := 0, false
	for _, fn := range o.Files {
		if parent.Err() != nil {
			_ = outw.Flush()
			return 130
		}
		s, warns, err := load(fn)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed = true
			continue
		}
		for _, w := range warns {
			cmdutil.Warnf(stderr, o.Quiet, "%s: %s", fn, w)
		}
		for _, c := range eng.Candidates(s) {
			ri, rj := s.At(c.I), s.At(c.J)
			fmt.Fprintf(outw, "%s\t%d\t%d\t%s\t%d%s\t%c\t%s\t%d%s\t%c\t%.3f\n",
				fn, c.I, c.J,
				ri.Chain, ri.SeqNum, ri.InsCode, ri.Base,
				rj.Chain, rj.SeqNum, rj.InsCode, rj.Base,
				ri.Origin.Sub(rj.Origin).Norm())
			total++
		}
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	if failed {
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
