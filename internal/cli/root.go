// internal/cli/root.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rnapairs/internal/config"
	"rnapairs/internal/version"
)

// Handler runs one command over the structure files and returns the
// process exit code.
type Handler func(ctx context.Context, c config.Config, files []string) int

// Handlers are the actions behind the commands.
type Handlers struct {
	Pairs      Handler
	Candidates Handler
}

// flagKeys maps each persistent flag to its config key.
var flagKeys = map[string]string{
	"short-contact":      "criteria.short-contact",
	"max-origin":         "criteria.max-origin",
	"max-vertical":       "criteria.max-vertical",
	"max-plane-angle":    "criteria.max-plane-angle",
	"min-gly-dist":       "criteria.min-gly-dist",
	"stack-const":        "criteria.stack-const",
	"cutoff":             "candidates.cutoff",
	"dv-max":             "candidates.dv-max",
	"legacy":             "candidates.legacy",
	"max-cells":          "candidates.max-cells",
	"change":             "hbond.change",
	"lw-dist":            "hbond.lw-dist",
	"carbon":             "hbond.carbon",
	"backbone":           "hbond.backbone",
	"network":            "network",
	"stacked":            "stacked",
	"chains":             "chains",
	"threads":            "threads",
	"output":             "output",
	"sort":               "sort",
	"header":             "header",
	"pretty":             "pretty",
	"quiet":              "quiet",
	"no-match-exit-code": "no-match-exit-code",
	"profile-json":       "profile-json",
}

// NewRootCommand builds the rnapairs command tree. The exit code of the
// handler that ran is stored in *code; cobra errors (bad flags, invalid
// settings) come back from Execute instead.
func NewRootCommand(h Handlers, code *int) *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	run := func(hd Handler) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := config.NewConfig(v, cfgFile)
			if err != nil {
				return err
			}
			*code = hd(cmd.Context(), c, args)
			return nil
		}
	}

	root := &cobra.Command{
		Use:   "rnapairs [flags] FILE...",
		Short: "Find and classify base pairs and stacks in RNA structures",
		Long: `Find and classify base pairs and stacks in RNA structures.

Each PDB file is searched for residue pairs whose base origins lie within
--cutoff of each other. Every candidate goes through the geometric filter
chain; accepted pairs are annotated with their hydrogen bonds and their
Leontis-Westhof edge/orientation class.

Settings come from flags, RNAPAIRS_* environment variables (for example
RNAPAIRS_CRITERIA_MAX_ORIGIN or RNAPAIRS_PROFILE_JSON) and an optional
--config file, in that order of precedence.`,
		Example: `  rnapairs 1ehz.pdb
  rnapairs pairs -o jsonl --threads 8 *.pdb
  rnapairs candidates --cutoff 12 1ehz.pdb`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(h.Pairs)(cmd, args)
		},
	}

	d := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML, JSON or TOML)")

	pf.Float64("short-contact", d.Criteria.ShortContact, "shortest ring N/O contact proving two bases touch (Å)")
	pf.Float64("max-origin", d.Criteria.MaxOrigin, "largest origin separation of a pair (Å)")
	pf.Float64("max-vertical", d.Criteria.MaxVertical, "largest vertical offset between base planes (Å)")
	pf.Float64("max-plane-angle", d.Criteria.MaxPlaneAngle, "largest angle between base planes (degrees)")
	pf.Float64("min-gly-dist", d.Criteria.MinGlyDist, "smallest glycosidic atom distance (Å)")
	pf.Float64("stack-const", d.Criteria.StackConst, "largest plane separation counted as a stack (Å)")

	pf.Float64("cutoff", d.Candidates.Cutoff, "candidate search radius between base origins (Å)")
	pf.Float64("dv-max", d.Candidates.DVMax, "largest vertical origin offset of a candidate (Å)")
	pf.Bool("legacy", d.Candidates.Legacy, "keep misaligned candidates (ignore --dv-max)")
	pf.Int("max-cells", d.Candidates.MaxCells, "grid cell limit before falling back to the plain scan")

	pf.Float64("change", d.HBond.Change, "widen the H-bond distance window by this much (Å)")
	pf.Float64("lw-dist", d.HBond.LWDist, "H-bond distance used for edge assignment (Å)")
	pf.Bool("carbon", d.HBond.Carbon, "allow C-H donors")
	pf.Bool("backbone", d.HBond.Backbone, "include sugar/phosphate atoms")

	pf.Bool("network", d.Network, "report network (tertiary) interactions instead of pairs")
	pf.Bool("stacked", d.Stacked, "report stacked records")
	pf.StringSlice("chains", d.Chains, "only report pairs within these chains (comma-separated)")

	pf.IntP("threads", "t", d.Threads, "number of worker goroutines (0 = all CPUs)")
	pf.StringP("output", "o", d.Output, "output format: text | tsv | json | jsonl")
	pf.String("sort", d.Sort, "record order within a structure: index | score")
	pf.Bool("header", d.Header, "print a TSV header row")
	pf.Bool("pretty", d.Pretty, "draw the hydrogen bonds of each pair (text output)")
	pf.BoolP("quiet", "q", d.Quiet, "suppress warnings")
	pf.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when no record is reported")
	pf.String("profile-json", d.ProfileJSON, "write counters and timings as JSON to this file")

	for name, key := range flagKeys {
		_ = v.BindPFlag(key, pf.Lookup(name))
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "pairs FILE...",
			Short: "Classify base pairs and stacks (default command)",
			Args:  cobra.MinimumNArgs(1),
			RunE:  run(h.Pairs),
		},
		&cobra.Command{
			Use:   "candidates FILE...",
			Short: "List the candidate pairs of the spatial search only",
			Args:  cobra.MinimumNArgs(1),
			RunE:  run(h.Candidates),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "rnapairs version %s\n", version.Version)
			},
		},
	)
	return root
}
