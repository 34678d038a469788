package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"

	"rnapairs-core/frame"
	"rnapairs-core/geom"
	"rnapairs-core/residue"
)

// helixPDB writes n stacked G-C Watson-Crick pairs (chain A G, chain B C)
// as a PDB file and returns its path.
func helixPDB(t *testing.T, n int) string {
	t.Helper()
	var rs []*residue.Residue
	for k := 0; k < n; k++ {
		f := geom.Identity.Rotated(r3.Vector{Z: 1}, 36*float64(k))
		rs = append(rs, frame.Ideal(0, "A", k+1, 'G', f, r3.Vector{Z: 3.4 * float64(k)}))
	}
	for k := n - 1; k >= 0; k-- {
		f := geom.Identity.Rotated(r3.Vector{Z: 1}, 36*float64(k)).Flipped()
		rs = append(rs, frame.Ideal(0, "B", n-k, 'C', f, r3.Vector{Z: 3.4 * float64(k)}))
	}

	var b strings.Builder
	serial := 1
	for _, r := range rs {
		for _, a := range r.Atoms {
			fmt.Fprintf(&b, "ATOM  %5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f  1.00  0.00          %2s\n",
				serial, a.Name, string(r.Base), r.Chain, r.SeqNum, a.Pos.X, a.Pos.Y, a.Pos.Z, string(residue.Element(a.Name)))
			serial++
		}
	}
	b.WriteString("END\n")

	fn := filepath.Join(t.TempDir(), fmt.Sprintf("helix%d.pdb", n))
	if err := os.WriteFile(fn, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}
