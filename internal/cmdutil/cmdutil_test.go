package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"rnapairs-core/candidate"
	"rnapairs-core/engine"
	"rnapairs-core/residue"

	"rnapairs/internal/pipeline"
)

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	Warnf(&buf, false, "x=%d", 1)
	if buf.String() != "WARN: x=1\n" {
		t.Fatalf("got %q", buf.String())
	}
	buf.Reset()
	Warnf(&buf, true, "x")
	if buf.Len() != 0 {
		t.Fatal("quiet must suppress")
	}
}

type onePair struct{}

func (onePair) Candidates(*residue.Structure) []candidate.Pair {
	return []candidate.Pair{{I: 0, J: 1}}
}

func (onePair) ClassifyPair(_ *residue.Structure, i, j int) (engine.PairRecord, bool) {
	return engine.PairRecord{I: engine.ResidueRef{Index: i + 1}, J: engine.ResidueRef{Index: j + 1}, Kind: engine.KindPair}, true
}

func load(path string) (*residue.Structure, []string, error) {
	if path == "bad" {
		return nil, nil, errors.New("bad input")
	}
	return &residue.Structure{Source: path}, nil, nil
}

func TestRunStream(t *testing.T) {
	var sent []string
	total, err := RunStream[engine.Batch](
		context.Background(),
		pipeline.Config{Threads: 2},
		[]string{"a", "bad", "b"},
		load,
		onePair{},
		func(b engine.Batch) (bool, engine.Batch, error) { return b.Source != "b", b, nil },
		func(b engine.Batch) int { return len(b.Records) },
		func(b engine.Batch) error { sent = append(sent, b.Source); return nil },
	)
	if err == nil || err.Error() != "bad input" {
		t.Fatalf("err = %v", err)
	}
	if total != 1 || len(sent) != 1 || sent[0] != "a" {
		t.Fatalf("total=%d sent=%v", total, sent)
	}
}
