package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func never(error) bool { return false }

func TestStart_WritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"v": v})
	}, never)
	for v := 1; v <= 3; v++ {
		in <- v
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"v\":1}\n{\"v\":2}\n{\"v\":3}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStart_EncodeErrorDrainsInput(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	in, done := Start[string](&buf, 1, func(_ *json.Encoder, s string) error {
		if strings.HasPrefix(s, "bad") {
			return boom
		}
		return nil
	}, never)
	// More values than the buffer holds: the writer must keep reading.
	for _, s := range []string{"ok", "bad", "x", "y", "z"} {
		in <- s
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
