package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdb")
	b := filepath.Join(dir, "b.pdb")
	_ = os.WriteFile(a, []byte("END\n"), 0o644)
	_ = os.WriteFile(b, []byte("END\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.pdb"), "plain.pdb"})
	if err != nil || len(got) != 3 || got[2] != "plain.pdb" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.cif")}); err == nil {
		t.Fatal("expected error for unmatched glob")
	}
}
