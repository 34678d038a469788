// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"rnapairs-core/engine"

	"rnapairs/internal/appcore"
	"rnapairs/internal/cli"
	"rnapairs/internal/cliutil"
	"rnapairs/internal/common"
	"rnapairs/internal/config"
	"rnapairs/internal/runutil"
	"rnapairs/internal/structure"
	"rnapairs/internal/version"
	"rnapairs/internal/visitors"
	"rnapairs/internal/writers"
)

func coreOptions(c config.Config, files []string) appcore.Options {
	return appcore.Options{
		Files:           files,
		Engine:          c.Engine(),
		Threads:         c.Threads,
		Quiet:           c.Quiet,
		NoMatchExitCode: c.NoMatchExitCode,
		ProfileJSON:     c.ProfileJSON,
	}
}

func runPairs(ctx context.Context, stdout, stderr io.Writer, c config.Config, files []string) int {
	writer := appcore.NewPairWriterFactory(c.Output, c.Sort, c.Header, c.Pretty, uuid.NewString(), "rnapairs "+version.Version)
	visit := visitors.PassThrough{}.Visit
	if chains := runutil.ChainSet(c.Chains); len(chains) > 0 || !c.Stacked {
		visit = visitors.Filter{Chains: chains, Stacked: c.Stacked}.Visit
	}
	return appcore.Run[engine.Batch](ctx, stdout, stderr, coreOptions(c, files), structure.Load,
		visit,
		func(b engine.Batch) int { return len(b.Records) },
		writer)
}

func runCandidates(ctx context.Context, stdout, stderr io.Writer, c config.Config, files []string) int {
	return appcore.RunCandidates(ctx, stdout, stderr, coreOptions(c, files), c.Header, structure.Load)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	code := 0
	expand := func(run func(context.Context, io.Writer, io.Writer, config.Config, []string) int) cli.Handler {
		return func(ctx context.Context, c config.Config, files []string) int {
			files, err := cliutil.ExpandPositionals(files)
			if err != nil {
				_, _ = fmt.Fprintln(stderr, "error:", err)
				return 2
			}
			return run(ctx, stdout, stderr, c, common.Unique(files))
		}
	}
	root := cli.NewRootCommand(cli.Handlers{
		Pairs:      expand(runPairs),
		Candidates: expand(runCandidates),
	}, &code)
	if argv == nil {
		argv = []string{}
	}
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	if err := root.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		code = 2
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
