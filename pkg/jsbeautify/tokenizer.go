package jsbeautify

import "regexp"

// lineStarters are words that, in token position, typically start a new
// output line when they appear inside a block.
var lineStarters = map[string]bool{
	"continue": true, "try": true, "throw": true, "return": true,
	"var": true, "if": true, "switch": true, "case": true,
	"default": true, "for": true, "while": true, "break": true,
}

// puncts is the greedy-match punctuator set. Every prefix of a
// multi-character entry is itself present, which is what makes the
// greedy one-character-at-a-time extension in readOperator correct.
var puncts = map[string]bool{}

func init() {
	for _, p := range []string{
		"+", "-", "*", "/", "%", "&", "++", "--",
		"=", "+=", "-=", "*=", "/=", "%=",
		"==", "===", "!=", "!==",
		">", "<", ">=", "<=", ">>", "<<", ">>>", ">>>=", ">>=", "<<=",
		"&&", "&=", "|", "||", "!", "!!", ",", ":", "?", "^", "^=", "|=", "::",
	} {
		puncts[p] = true
	}
}

var sciNotationSign = regexp.MustCompile(`^[0-9]+[Ee]$`)

// tokenizer advances a rune cursor through the source. It is stateless
// over its own past (no memory of previously returned tokens) except
// for the read cursor itself; regex-vs-division and preserved-newline
// decisions are made by querying the Formatter's last-token state and,
// for preserved blank lines, by writing directly into the Formatter's
// output — lexing and emission are mutually dependent rather than
// strictly pipelined.
type tokenizer struct {
	input []rune
	pos   int
}

func newTokenizer(source string) *tokenizer {
	return &tokenizer{input: []rune(source)}
}

func (t *tokenizer) eof() bool {
	return t.pos >= len(t.input)
}

func (t *tokenizer) peek() rune {
	return t.peekAt(0)
}

func (t *tokenizer) peekAt(offset int) rune {
	i := t.pos + offset
	if i < 0 || i >= len(t.input) {
		return 0
	}
	return t.input[i]
}

func (t *tokenizer) advance() rune {
	r := t.input[t.pos]
	t.pos++
	return r
}

func (t *tokenizer) advanceN(n int) {
	for i := 0; i < n && !t.eof(); i++ {
		t.pos++
	}
}

func (t *tokenizer) matches(s string) bool {
	rs := []rune(s)
	if t.pos+len(rs) > len(t.input) {
		return false
	}
	for i, r := range rs {
		if t.input[t.pos+i] != r {
			return false
		}
	}
	return true
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAsciiLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWordChar governs both "starts with a wordchar" and "consume all
// subsequent wordchars". A lone `$` is treated as an ordinary wordchar
// rather than getting its own jQuery-specific dispatch branch, so it
// joins the ASCII-letter/digit/underscore set here.
func isWordChar(c rune) bool {
	return isAsciiLetter(c) || isDigit(c) || c == '_' || c == '$'
}

func isPunctChar(c rune) bool {
	return puncts[string(c)]
}

// skipWhitespace consumes leading whitespace and returns how many
// newlines it contained.
func (t *tokenizer) skipWhitespace() int {
	n := 0
	for !t.eof() {
		switch t.peek() {
		case '\n':
			n++
			t.advance()
		case '\r', '\t', ' ':
			t.advance()
		default:
			return n
		}
	}
	return n
}

// next returns the next token, consulting and occasionally mutating f
// (the Formatter) for regex-vs-division disambiguation, the
// if_line_flag/last_type newline check on bare words, and blank-line
// preservation.
func (t *tokenizer) next(f *Formatter) Token {
	newLines := t.skipWhitespace()
	wantNewline := newLines == 1

	if f.opts.PreserveNewlines && newLines > 1 {
		f.printNewline(false)
		f.printNewline(false)
	}

	if t.eof() {
		return Token{"", TKEOF, wantNewline}
	}

	c := t.peek()

	switch {
	case isWordChar(c):
		return t.readWord(f, wantNewline)

	case c == '(' || c == '[':
		t.advance()
		return Token{string(c), TKStartExpr, wantNewline}

	case c == ')' || c == ']':
		t.advance()
		return Token{string(c), TKEndExpr, wantNewline}

	case c == '{':
		t.advance()
		return Token{"{", TKStartBlock, wantNewline}

	case c == '}':
		t.advance()
		return Token{"}", TKEndBlock, wantNewline}

	case c == ';':
		t.advance()
		return Token{";", TKSemicolon, wantNewline}

	case c == '/' && t.peekAt(1) == '*':
		return t.readBlockComment(wantNewline)

	case c == '/' && t.peekAt(1) == '/':
		return t.readLineComment(f, wantNewline)

	case c == '\'' || c == '"' || (c == '/' && t.regexAllowed(f)):
		return t.readStringOrRegex(wantNewline)

	case c == '#' && isDigit(t.peekAt(1)):
		return t.readHash(wantNewline)

	case c == '<' && t.matches("<!--"):
		t.advanceN(4)
		return Token{"<!--", TKComment, wantNewline}

	case c == '-' && t.matches("-->"):
		t.advanceN(3)
		tok := Token{"-->", TKComment, wantNewline}
		if wantNewline {
			f.printNewline(false)
		}
		return tok

	case isPunctChar(c):
		return t.readOperator(wantNewline)

	default:
		t.advance()
		return Token{string(c), TKUnknown, wantNewline}
	}
}

func (t *tokenizer) consumeWordChars() string {
	start := t.pos
	for !t.eof() && isWordChar(t.peek()) {
		t.advance()
	}
	return string(t.input[start:t.pos])
}

func (t *tokenizer) readWord(f *Formatter, wantNewline bool) Token {
	text := t.consumeWordChars()

	if sciNotationSign.MatchString(text) && (t.peek() == '+' || t.peek() == '-') {
		text += string(t.advance())
		text += t.consumeWordChars()
	}

	if text == "in" {
		return Token{text, TKOperator, wantNewline}
	}

	if wantNewline && f.lastType != TKOperator && !f.ifLineFlag {
		f.printNewline(false)
	}

	return Token{text, TKWord, wantNewline}
}

func (t *tokenizer) readBlockComment(wantNewline bool) Token {
	start := t.pos
	t.advanceN(2)
	for !t.eof() {
		if t.peek() == '*' && t.peekAt(1) == '/' {
			t.advanceN(2)
			break
		}
		t.advance()
	}
	return Token{string(t.input[start:t.pos]), TKBlockComment, wantNewline}
}

func (t *tokenizer) readLineComment(f *Formatter, wantNewline bool) Token {
	start := t.pos
	t.advanceN(2)
	for !t.eof() && t.peek() != '\r' && t.peek() != '\n' {
		t.advance()
	}
	text := string(t.input[start:t.pos])
	if !t.eof() {
		t.advance()
	}
	if wantNewline {
		f.printNewline(false)
	}
	return Token{text, TKComment, wantNewline}
}

// regexAllowed decides, from the Formatter's previously emitted token,
// whether a `/` opens a regex literal rather than starting a division
// operator: keyed on the previous token's type, with `return` as the
// one text-based exception.
func (t *tokenizer) regexAllowed(f *Formatter) bool {
	if f.lastType == TKWord && f.lastText == "return" {
		return true
	}
	switch f.lastType {
	case TKStartExpr, TKStartBlock, TKEndBlock, TKOperator, TKEOF, TKSemicolon:
		return true
	default:
		return false
	}
}

func (t *tokenizer) readStringOrRegex(wantNewline bool) Token {
	sep := t.peek()
	isRegex := sep == '/'

	start := t.pos
	t.advance()

	inCharClass := false
	for !t.eof() {
		ch := t.peek()
		if ch == '\\' {
			t.advance()
			if !t.eof() {
				t.advance()
			}
			continue
		}
		if isRegex {
			if ch == '[' {
				inCharClass = true
			} else if ch == ']' {
				inCharClass = false
			} else if ch == sep && !inCharClass {
				break
			}
		} else if ch == sep {
			break
		}
		t.advance()
	}

	if !t.eof() && t.peek() == sep {
		t.advance()
	}

	if isRegex {
		for !t.eof() && isAsciiLetter(t.peek()) {
			t.advance()
		}
	}

	return Token{string(t.input[start:t.pos]), TKString, wantNewline}
}

func (t *tokenizer) readHash(wantNewline bool) Token {
	start := t.pos
	t.advance()
	for !t.eof() {
		ch := t.advance()
		if ch == '#' {
			return Token{string(t.input[start:t.pos]), TKWord, wantNewline}
		}
		if ch == '=' {
			return Token{string(t.input[start:t.pos]), TKOperator, wantNewline}
		}
	}
	return Token{string(t.input[start:t.pos]), TKWord, wantNewline}
}

func (t *tokenizer) readOperator(wantNewline bool) Token {
	text := string(t.advance())
	for !t.eof() {
		extended := text + string(t.peek())
		if !puncts[extended] {
			break
		}
		text = extended
		t.advance()
	}
	return Token{text, TKOperator, wantNewline}
}
