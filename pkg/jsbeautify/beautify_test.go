package jsbeautify

import (
	"strings"
	"testing"
)

func beautify(t *testing.T, source string, raw RawOptions) string {
	t.Helper()
	return New(source, raw).String()
}

func TestBeautifyScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"if-block", "if(true){var x=1;}", "if (true) {\n    var x = 1;\n}"},
		{"var-list", "var a=1,b=2,c=3;", "var a = 1,\nb = 2,\nc = 3;"},
		{"object-literal", "var obj={a:1,b:2};", "var obj = {\n    a: 1,\n    b: 2\n};"},
		{"do-while", "do{x();}while(condition);", "do {\n    x();\n} while (condition);"},
		{"regex-char-class", "var r=/[a-z\\/]+/gi;", "var r = /[a-z\\/]+/gi;"},
		{"ternary", "var x=true?1:2;", "var x = true ? 1 : 2;"},
		{"function-unary-minus", "function f(){return -1;}", "function f() {\n    return -1;\n}"},
		{"double-colon", "Foo::bar();", "Foo::bar();"},
		{"script-tag-wrap", `<script type="text/javascript">var x=1;</script>`,
			`<script type="text/javascript">var x = 1;</script>`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := beautify(t, c.in, nil)
			if got != c.want {
				t.Errorf("Beautify(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestBeautifyOptions(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts RawOptions
		want string
	}{
		{"indent-size-2", "if(true){var x=1;}", RawOptions{"indent_size": 2},
			"if (true) {\n  var x = 1;\n}"},
		{"indent-size-bad-falls-back", "if(true){var x=1;}", RawOptions{"indent_size": "bad"},
			"if (true) {\n    var x = 1;\n}"},
		{"tab-indent", "if(true){var x=1;}", RawOptions{"indent_char": "\t", "indent_size": 1},
			"if (true) {\n\tvar x = 1;\n}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := beautify(t, c.in, c.opts)
			if got != c.want {
				t.Errorf("Beautify(%q, %v) = %q, want %q", c.in, c.opts, got, c.want)
			}
		})
	}
}

func TestBeautifyBoundaryCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := beautify(t, "", nil); got != "" {
			t.Errorf("got %q, want \"\"", got)
		}
	})

	t.Run("whitespace-only", func(t *testing.T) {
		if got := beautify(t, "   \n\t\n  ", nil); got != "" {
			t.Errorf("got %q, want \"\"", got)
		}
	})

	t.Run("single-semicolon", func(t *testing.T) {
		if got := beautify(t, ";", nil); got != ";" {
			t.Errorf("got %q, want %q", got, ";")
		}
	})

	t.Run("escaped-quotes-survive", func(t *testing.T) {
		in := `var s="a\"b";`
		got := beautify(t, in, nil)
		if !strings.Contains(got, `"a\"b"`) {
			t.Errorf("escaped quote mangled: %q", got)
		}
	})

	t.Run("regex-slash-in-char-class-preserved", func(t *testing.T) {
		in := `var r=/[a\/b]/;`
		got := beautify(t, in, nil)
		if !strings.Contains(got, `/[a\/b]/`) {
			t.Errorf("regex mangled: %q", got)
		}
	})
}

func TestBeautifyIdempotent(t *testing.T) {
	inputs := []string{
		"if(true){var x=1;}",
		"var a=1,b=2,c=3;",
		"var obj={a:1,b:2};",
		"do{x();}while(condition);",
		"var x=true?1:2;",
		"function f(){return -1;}",
		"switch(x){case 1:foo();break;default:bar();}",
		"for(var i=0;i<10;i++){a.push(i);}",
	}

	for _, in := range inputs {
		once := beautify(t, in, nil)
		twice := beautify(t, once, nil)
		if once != twice {
			t.Errorf("not idempotent for %q:\n  once:  %q\n  twice: %q", in, once, twice)
		}
	}
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestBeautifyBracketBalance(t *testing.T) {
	inputs := []string{
		"if(true){var x=1;}",
		"var obj={a:1,b:[1,2,3]};",
		"function f(a,b){return a[b]+(a-b);}",
		"switch(x){case 1:foo();break;}",
	}

	for _, in := range inputs {
		out := beautify(t, in, nil)
		for _, pair := range []struct{ open, close rune }{{'{', '}'}, {'(', ')'}, {'[', ']'}} {
			if countRune(in, pair.open) != countRune(out, pair.open) {
				t.Errorf("%q: %q count changed", in, pair.open)
			}
			if countRune(in, pair.close) != countRune(out, pair.close) {
				t.Errorf("%q: %q count changed", in, pair.close)
			}
		}
	}
}

func TestBeautifyNoScriptTagsWhenMarkersAbsent(t *testing.T) {
	in := "var x=1;"
	got := beautify(t, in, nil)
	if strings.Contains(got, "<script") || strings.Contains(got, "</script>") {
		t.Errorf("wrapped output with no markers present in input: %q", got)
	}
}
