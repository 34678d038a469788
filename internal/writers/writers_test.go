package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"rnapairs-core/engine"
	"rnapairs-core/primitives"

	"rnapairs/internal/output"
	"rnapairs/pkg/api"
)

func batch(src string) engine.Batch {
	return engine.Batch{Source: src, Bases: 4, Records: []engine.PairRecord{
		{I: engine.ResidueRef{Index: 2, Chain: "A", Base: "A"}, J: engine.ResidueRef{Index: 3, Chain: "A", Base: "U"}, Kind: engine.KindPair, Type: "W/Wcis", Edges: "W/W", Orient: "cis"},
		{I: engine.ResidueRef{Index: 1, Chain: "A", Base: "G"}, J: engine.ResidueRef{Index: 4, Chain: "A", Base: "C"}, Kind: engine.KindPair, Type: "W/Wcis", Edges: "W/W", Orient: "cis"},
	}}
}

func run(t *testing.T, o Options, batches ...engine.Batch) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartPairWriter(&buf, o, 1)
	for _, b := range batches {
		in <- b
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer: %v", err)
	}
	return buf.String()
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartPairWriter(&b, Options{Format: "nope-format"}, 1)
	in <- batch("x")
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown pairs format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
	if err := WriteBatch("nope", &b, batch("x")); err == nil {
		t.Fatal("WriteBatch accepted an unknown format")
	}
}

func TestTSVHeaderAndSort(t *testing.T) {
	out := run(t, Options{Format: output.FormatTSV, Header: true, SortBy: "index"}, batch("a"), batch("b"))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 || lines[0] != output.TSVHeader {
		t.Fatalf("tsv:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "a\t1\t4\t") || !strings.HasPrefix(lines[4], "b\t2\t3\t") {
		t.Fatalf("rows not sorted:\n%s", out)
	}
}

func TestTextWriter(t *testing.T) {
	out := run(t, Options{Format: output.FormatText}, batch("a"))
	if !strings.Contains(out, "# a\n") || !strings.Contains(out, "2_3, A:") {
		t.Fatalf("text:\n%s", out)
	}
}

func TestPrettyTextWriter(t *testing.T) {
	b := batch("a")
	b.Records[0].HBonds = []primitives.HBond{{AtomI: " N6 ", AtomJ: " O4 ", Dist: 3.0}}
	out := run(t, Options{Format: output.FormatText, Pretty: true}, b)
	if !strings.Contains(out, "A:0 A  W/Wcis  U A:0\n") || !strings.Contains(out, "N6 |------------| O4") {
		t.Fatalf("pretty text:\n%s", out)
	}
	// Pretty only applies to text.
	if out := run(t, Options{Format: output.FormatTSV, Pretty: true}, b); strings.Contains(out, "|") {
		t.Fatalf("pretty leaked into tsv:\n%s", out)
	}
}

func TestJSONWriter(t *testing.T) {
	out := run(t, Options{Format: output.FormatJSON, RunID: "r", SortBy: "index"}, batch("a"), batch("b"))
	var doc api.PairsV1
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("json: %v", err)
	}
	if doc.RunID != "r" || len(doc.Structures) != 2 || doc.Stats.Pairs != 4 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Structures[0].Core.BasePairs[0].I.Index != 1 {
		t.Fatal("json records not sorted")
	}
}

func TestJSONLWriter(t *testing.T) {
	out := run(t, Options{Format: output.FormatJSONL}, batch("a"), batch("b"))
	sc := bufio.NewScanner(strings.NewReader(out))
	n := 0
	for sc.Scan() {
		var v api.BasePairV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("line %d: %v", n, err)
		}
		if v.Source == "" || v.LW != "W/Wcis" {
			t.Fatalf("line %d = %+v", n, v)
		}
		n++
	}
	if n != 4 {
		t.Fatalf("lines = %d", n)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("pipe errors not recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}
