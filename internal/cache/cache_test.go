package cache

import (
	"testing"

	"github.com/muraenateam/jsbeautify/pkg/jsbeautify"
)

func TestKeyStable(t *testing.T) {
	opts := jsbeautify.RawOptions{"indent_size": 4, "indent_char": " ", "preserve_newlines": false}

	a := Key("var x = 1;", opts)
	b := Key("var x = 1;", opts)

	if a != b {
		t.Fatalf("Key is not deterministic: %q != %q", a, b)
	}
}

func TestKeyDiffersOnSourceOrOptions(t *testing.T) {
	opts := jsbeautify.RawOptions{"indent_size": 4, "indent_char": " ", "preserve_newlines": false}
	otherOpts := jsbeautify.RawOptions{"indent_size": 2, "indent_char": " ", "preserve_newlines": false}

	base := Key("var x = 1;", opts)

	if Key("var x = 2;", opts) == base {
		t.Error("different source produced the same key")
	}
	if Key("var x = 1;", otherOpts) == base {
		t.Error("different options produced the same key")
	}
}

func TestGzipRoundTrip(t *testing.T) {
	source := "function f() { return 1; }"

	compressed, err := gzip2(source)
	if err != nil {
		t.Fatalf("gzip2: %s", err)
	}

	out, err := gunzip(compressed)
	if err != nil {
		t.Fatalf("gunzip: %s", err)
	}

	if out != source {
		t.Errorf("round trip mismatch: got %q, want %q", out, source)
	}
}
