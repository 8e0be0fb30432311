package jsbeautify

import (
	"fmt"
	"testing"

	"github.com/lucasjones/reggen"
)

// regexBodyPattern describes legal-ish regex-literal bodies: a run of
// ASCII letters and digits, optionally containing a bracketed
// character class, the same way module/tracking generates IDs from a
// regex with reggen.NewGenerator(...).Generate(1).
const regexBodyPattern = `[a-zA-Z0-9]{1,4}(\[[a-zA-Z0-9]{1,3}\])?[a-zA-Z0-9]{0,4}`

// TestTokenizerRegexRoundTrip generates random regex-literal bodies
// from regexBodyPattern and checks that wrapping one in slashes and a
// trailing statement still tokenizes as a single TKString token
// followed by the semicolon, regardless of the random body produced.
func TestTokenizerRegexRoundTrip(t *testing.T) {
	gen, err := reggen.NewGenerator(regexBodyPattern)
	if err != nil {
		t.Fatalf("building generator: %s", err)
	}

	for i := 0; i < 25; i++ {
		body := gen.Generate(1)
		source := fmt.Sprintf("return /%s/;", body)

		f := newFormatter(DefaultOptions())
		tk := newTokenizer(source)

		var literal Token
		var sawSemicolon bool
		for {
			tok := tk.next(f)
			if tok.Type == TKEOF {
				break
			}
			if tok.Type == TKString {
				literal = tok
			}
			if tok.Type == TKSemicolon {
				sawSemicolon = true
			}
			f.lastType = tok.Type
			f.lastText = tok.Text
		}

		want := "/" + body + "/"
		if literal.Text != want {
			t.Errorf("body %q: got literal %q, want %q", body, literal.Text, want)
		}
		if !sawSemicolon {
			t.Errorf("body %q: statement-terminating semicolon was not tokenized", body)
		}
	}
}
