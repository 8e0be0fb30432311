package jsbeautify

import "strings"

// Formatter owns the output buffer, indentation level, mode stack and
// the handful of contextual flags the per-token dispatch rules read and
// write. It is mutated by exactly one pass over the input and is never
// shared across invocations; see Beautify.
type Formatter struct {
	opts Options

	output       string
	indentString string
	indentLevel  int

	modes *modeStack

	lastType TokenType
	lastText string
	lastWord string

	ifLineFlag        bool
	varLine           bool
	varLineTainted    bool
	inCase            bool
	doBlockJustClosed bool
}

func newFormatter(opts Options) *Formatter {
	return &Formatter{
		opts:         opts,
		indentString: opts.indentString(),
		indentLevel:  opts.IndentLevel,
		modes:        newModeStack(),
		lastType:     TKStartExpr,
		lastText:     "",
	}
}

// run performs the single pass: pull a token, dispatch it, record it as
// the new "last" token, repeat until the tokenizer reports TKEOF.
func (f *Formatter) run(source string) {
	tk := newTokenizer(source)
	for {
		tok := tk.next(f)
		if tok.Type == TKEOF {
			return
		}
		f.dispatch(tok)
		f.lastType = tok.Type
		f.lastText = tok.Text
	}
}

func (f *Formatter) dispatch(tok Token) {
	switch tok.Type {
	case TKStartExpr:
		f.handleStartExpr(tok)
	case TKEndExpr:
		f.handleEndExpr(tok)
	case TKStartBlock:
		f.handleStartBlock(tok)
	case TKEndBlock:
		f.handleEndBlock(tok)
	case TKWord:
		f.handleWord(tok)
	case TKSemicolon:
		f.handleSemicolon(tok)
	case TKString:
		f.handleString(tok)
	case TKOperator:
		f.handleOperator(tok)
	case TKBlockComment:
		f.handleBlockComment(tok)
	case TKComment:
		f.handleComment(tok)
	case TKUnknown:
		f.handleUnknown(tok)
	}
}

func (f *Formatter) handleStartExpr(tok Token) {
	f.modes.push(ModeExpression)

	switch {
	case f.lastText == ";" || f.lastType == TKStartBlock:
		f.printNewline(false)
	case f.lastType == TKEndExpr || f.lastType == TKStartExpr:
		f.printNewline(true)
	case f.lastType != TKWord && f.lastType != TKOperator:
		f.printSpace()
	case lineStarters[f.lastWord]:
		f.printSpace()
	}

	f.printToken(tok.Text)
}

func (f *Formatter) handleEndExpr(tok Token) {
	f.printToken(tok.Text)
	f.modes.pop()
}

func (f *Formatter) handleStartBlock(tok Token) {
	mode := ModeBlock
	if f.lastWord == "do" {
		mode = ModeDoBlock
	}
	f.modes.push(mode)

	if f.lastType != TKOperator && f.lastType != TKStartExpr {
		if f.lastType == TKStartBlock {
			f.printNewline(false)
		} else {
			f.printSpace()
		}
	}

	f.printToken(tok.Text)
	f.indent()
}

func (f *Formatter) handleEndBlock(tok Token) {
	if f.lastType == TKStartBlock {
		f.trimOutput()
		f.unindent()
	} else {
		f.unindent()
		f.printNewline(false)
	}

	f.printToken(tok.Text)
	wasDoBlock := f.modes.pop()
	f.doBlockJustClosed = wasDoBlock
}

type wordPrefix int

const (
	prefixNone wordPrefix = iota
	prefixNewline
	prefixSpace
)

func (f *Formatter) handleWord(tok Token) {
	text := tok.Text

	if f.doBlockJustClosed {
		f.printSpace()
		f.printToken(text)
		f.printSpace()
		f.doBlockJustClosed = false
		return
	}

	if text == "case" || text == "default" {
		if f.lastText == ":" {
			f.removeIndent()
		} else {
			f.unindent()
			f.printNewline(true)
			f.indent()
		}
		f.printToken(text)
		f.inCase = true
		return
	}

	isElseCatchFinally := text == "else" || text == "catch" || text == "finally"

	prefix := prefixNone
	switch {
	case f.lastType == TKEndBlock:
		if !isElseCatchFinally {
			prefix = prefixNewline
		} else {
			prefix = prefixSpace
			f.printSpace()
		}
	case f.lastType == TKSemicolon:
		if f.modes.current() == ModeBlock {
			prefix = prefixNewline
		} else {
			prefix = prefixSpace
		}
	case f.lastType == TKString:
		prefix = prefixNewline
	case f.lastType == TKWord:
		prefix = prefixSpace
	case f.lastType == TKStartBlock:
		prefix = prefixNewline
	case f.lastType == TKEndExpr:
		f.printSpace()
		prefix = prefixNewline
	}

	switch {
	case f.lastType != TKEndBlock && isElseCatchFinally:
		f.printNewline(true)

	case lineStarters[text] || prefix == prefixNewline:
		switch {
		case f.lastText == "else":
			f.printSpace()
		case (f.lastType == TKStartExpr || f.lastText == "=" || f.lastText == ",") && text == "function":
			// nothing
		case f.lastType == TKWord && (f.lastText == "return" || f.lastText == "throw"):
			f.printSpace()
		case f.lastType != TKEndExpr:
			if !((f.lastType == TKStartExpr && text == "var") || f.lastText == ":") {
				if text == "if" && f.lastWord == "else" {
					f.printSpace()
				} else {
					f.printNewline(true)
				}
			}
		default: // f.lastType == TKEndExpr
			if lineStarters[text] && f.lastText != ")" {
				f.printNewline(true)
			}
		}

	case prefix == prefixSpace:
		f.printSpace()
	}

	f.printToken(text)
	f.lastWord = text

	if text == "var" {
		f.varLine = true
		f.varLineTainted = false
	}
	if text == "if" || text == "else" {
		f.ifLineFlag = true
	}
}

func (f *Formatter) handleSemicolon(tok Token) {
	f.printToken(tok.Text)
	f.varLine = false
}

func (f *Formatter) handleString(tok Token) {
	switch f.lastType {
	case TKStartBlock, TKEndBlock, TKSemicolon:
		f.printNewline(false)
	case TKWord:
		f.printSpace()
	}
	f.printToken(tok.Text)
}

func (f *Formatter) handleOperator(tok Token) {
	text := tok.Text

	if f.varLine && text != "," {
		f.varLineTainted = true
		if text == ":" {
			f.varLine = false
		}
	}
	if f.varLine && text == "," && f.modes.current() == ModeExpression {
		f.varLineTainted = false
	}

	if text == ":" && f.inCase {
		f.printToken(":")
		f.printNewline(false)
		f.inCase = false
		return
	}

	if text == "::" {
		f.printToken(text)
		return
	}

	if text == "," {
		switch {
		case f.varLine:
			if f.varLineTainted {
				f.printToken(text)
				f.printNewline(false)
				f.varLineTainted = false
			} else {
				f.printToken(text)
				f.printSpace()
			}
		case f.lastType == TKEndBlock:
			f.printToken(text)
			f.printNewline(false)
		case f.modes.current() == ModeBlock:
			f.printToken(text)
			f.printNewline(false)
		default:
			f.printToken(text)
			f.printSpace()
		}
		return
	}

	startDelim, endDelim := true, true

	switch {
	case text == "++" || text == "--":
		if f.lastText == ";" {
			if f.modes.current() == ModeBlock {
				f.printNewline(false)
			}
			startDelim, endDelim = true, false
		} else {
			if f.lastText == "{" {
				f.printNewline(false)
			}
			startDelim, endDelim = false, false
		}

	case (text == "!" || text == "+" || text == "-") && (f.lastText == "return" || f.lastText == "case"):
		startDelim, endDelim = true, false

	case (text == "!" || text == "+" || text == "-") && f.lastType == TKStartExpr:
		startDelim, endDelim = false, false

	case f.lastType == TKOperator:
		startDelim, endDelim = false, false

	case f.lastType == TKEndExpr:
		startDelim, endDelim = true, true

	case text == ".":
		startDelim, endDelim = false, false

	case text == ":":
		startDelim = f.isTernaryOperator()
	}

	if startDelim {
		f.printSpace()
	}
	f.printToken(text)
	if endDelim {
		f.printSpace()
	}
}

func (f *Formatter) handleBlockComment(tok Token) {
	f.printNewline(false)
	f.printToken(tok.Text)
	f.printNewline(false)
}

func (f *Formatter) handleComment(tok Token) {
	f.printSpace()
	f.printToken(tok.Text)
	f.printNewline(false)
}

func (f *Formatter) handleUnknown(tok Token) {
	if f.lastText != tok.Text {
		if f.lastType == TKSemicolon || f.lastType == TKStartBlock {
			f.printNewline(false)
		}
		f.printToken(tok.Text)
	}
}

// --- output primitives -----------------------------------------------

func (f *Formatter) printSpace() {
	if f.output == "" {
		return
	}
	if strings.HasSuffix(f.output, "\n") || strings.HasSuffix(f.output, " ") {
		return
	}
	if f.indentString != "" && strings.HasSuffix(f.output, f.indentString) {
		return
	}
	f.output += " "
}

func (f *Formatter) printNewline(ignoreRepeat bool) {
	f.trimOutput()

	skip := f.output == "" || (ignoreRepeat && strings.HasSuffix(f.output, "\n"))
	if !skip {
		f.output += "\n"
		f.ifLineFlag = false
	}
	f.output += strings.Repeat(f.indentString, f.indentLevel)
}

func (f *Formatter) printToken(text string) {
	f.output += text
}

func (f *Formatter) trimOutput() {
	for {
		switch {
		case strings.HasSuffix(f.output, " "), strings.HasSuffix(f.output, "\t"):
			f.output = f.output[:len(f.output)-1]
		case f.indentString != "" && strings.HasSuffix(f.output, f.indentString):
			f.output = f.output[:len(f.output)-len(f.indentString)]
		default:
			return
		}
	}
}

func (f *Formatter) indent() {
	f.indentLevel++
}

func (f *Formatter) unindent() {
	if f.indentLevel > 0 {
		f.indentLevel--
	}
}

// removeIndent strips one trailing indent unit from the already-written
// output, used by the case/default label dedent.
func (f *Formatter) removeIndent() {
	if f.indentString != "" && strings.HasSuffix(f.output, f.indentString) {
		f.output = f.output[:len(f.output)-len(f.indentString)]
	}
}

// isTernaryOperator scans the output backward to decide whether the `:`
// about to be printed closes a ternary (`cond ? a : b`, leading space)
// or is an object-literal/label colon (no leading space).
func (f *Formatter) isTernaryOperator() bool {
	runes := []rune(f.output)
	level := 0
	colonCount := 0

	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case ':':
			if level == 0 {
				colonCount++
			}
		case '?':
			if level == 0 {
				if colonCount == 0 {
					return true
				}
				colonCount--
			}
		case '{':
			if level == 0 {
				return false
			}
			level--
		case '(', '[':
			level--
		case ')', ']', '}':
			level++
		}
	}

	return false
}
