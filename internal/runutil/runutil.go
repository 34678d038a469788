// internal/runutil/runutil.go
package runutil

import (
	"runtime"
	"strings"

	"rnapairs-core/engine"
)

// EffectiveThreads returns n, or the CPU count when n <= 0.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// WriterBuffer sizes the channel between the pipeline and the writer.
func WriterBuffer(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}

// ChainSet turns a list like ["A", "b,C"] into a lookup set. An empty
// result means every chain.
func ChainSet(chains []string) map[string]bool {
	set := map[string]bool{}
	for _, c := range chains {
		for _, f := range strings.Split(c, ",") {
			if f = strings.TrimSpace(f); f != "" {
				set[f] = true
			}
		}
	}
	return set
}

// ValidateEngine returns warnings for settings that are accepted but
// unlikely to do what the user wants.
func ValidateEngine(c engine.Config) []string {
	var warns []string
	if c.Thresholds.MaxOrigin > c.Cutoff {
		warns = append(warns, "warning: criteria.max-origin exceeds candidates.cutoff; pairs beyond the cutoff are never seen")
	}
	if c.KeepMisaligned && c.DVMax > 0 {
		warns = append(warns, "warning: candidates.legacy keeps misaligned pairs; ignoring candidates.dv-max")
	}
	if c.Network && c.Change != 0 {
		warns = append(warns, "warning: --network does not enumerate hydrogen bonds; ignoring hbond.change")
	}
	return warns
}
