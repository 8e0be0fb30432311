package jsbeautify

import "testing"

// collectTypes runs the tokenizer to EOF against a throwaway formatter
// and returns the sequence of token types, mirroring how the real
// emitter drives it one token at a time.
func collectTypes(source string) []TokenType {
	f := newFormatter(DefaultOptions())
	tk := newTokenizer(source)
	var types []TokenType
	for {
		tok := tk.next(f)
		if tok.Type == TKEOF {
			return types
		}
		types = append(types, tok.Type)
		f.lastType = tok.Type
		f.lastText = tok.Text
	}
}

func TestTokenizerRegexVsDivision(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want TokenType
	}{
		{"after-return-is-regex", "return /abc/;", TKString},
		{"after-start-expr-is-regex", "(/abc/)", TKString},
		{"after-word-is-division", "a /b/", TKOperator},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFormatter(DefaultOptions())
			tk := newTokenizer(c.in)

			var last Token
			for {
				tok := tk.next(f)
				if tok.Type == TKEOF {
					break
				}
				if tok.Text == "/abc/" || tok.Text == "/" {
					last = tok
				}
				f.lastType = tok.Type
				f.lastText = tok.Text
			}

			if last.Type != c.want {
				t.Errorf("got %v, want %v", last.Type, c.want)
			}
		})
	}
}

func TestTokenizerRegexCharClassSlash(t *testing.T) {
	f := newFormatter(DefaultOptions())
	tk := newTokenizer("return /[a/b]/g;")
	tok := tk.next(f) // "return"
	f.lastType, f.lastText = tok.Type, tok.Text

	tok = tk.next(f)
	if tok.Type != TKString || tok.Text != "/[a/b]/g" {
		t.Errorf("got %q (%v), want %q (TKString)", tok.Text, tok.Type, "/[a/b]/g")
	}
}

func TestTokenizerScientificNotation(t *testing.T) {
	f := newFormatter(DefaultOptions())
	tk := newTokenizer("1e+10")
	tok := tk.next(f)
	if tok.Type != TKWord || tok.Text != "1e+10" {
		t.Errorf("got %q (%v), want %q (TKWord)", tok.Text, tok.Type, "1e+10")
	}
}

func TestTokenizerInKeywordIsOperator(t *testing.T) {
	f := newFormatter(DefaultOptions())
	tk := newTokenizer("a in b")
	tk.next(f) // "a"
	tok := tk.next(f)
	if tok.Type != TKOperator || tok.Text != "in" {
		t.Errorf("got %q (%v), want TKOperator \"in\"", tok.Text, tok.Type)
	}
}

func TestTokenizerBlockComment(t *testing.T) {
	types := collectTypes("/* hello */ a;")
	want := []TokenType{TKBlockComment, TKWord, TKSemicolon}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, types[i], want[i])
		}
	}
}

func TestTokenizerLegacyHTMLComments(t *testing.T) {
	types := collectTypes("<!--\na();\n-->")
	if len(types) == 0 || types[0] != TKComment {
		t.Fatalf("expected leading TKComment for <!--, got %v", types)
	}
	if types[len(types)-1] != TKComment {
		t.Fatalf("expected trailing TKComment for -->, got %v", types)
	}
}

func TestTokenizerGreedyOperatorMatch(t *testing.T) {
	cases := []string{">>>=", ">>>", "===", "!==", "<<="}
	for _, c := range cases {
		f := newFormatter(DefaultOptions())
		tk := newTokenizer(c + " x")
		tok := tk.next(f)
		if tok.Text != c || tok.Type != TKOperator {
			t.Errorf("input %q: got %q (%v)", c, tok.Text, tok.Type)
		}
	}
}

func TestTokenizerUnknownChar(t *testing.T) {
	f := newFormatter(DefaultOptions())
	tk := newTokenizer("@")
	tok := tk.next(f)
	if tok.Type != TKUnknown || tok.Text != "@" {
		t.Errorf("got %q (%v), want TKUnknown \"@\"", tok.Text, tok.Type)
	}
}
