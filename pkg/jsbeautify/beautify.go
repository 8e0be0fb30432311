package jsbeautify

// Beautify re-indents and re-spaces source according to opts. It strips
// a single pair of script-tag markers before formatting and re-wraps
// them afterward.
func Beautify(source string, opts Options) string {
	stripped, wrap := stripScriptTags(source)

	f := newFormatter(opts)
	f.run(stripped)
	result := f.output

	if wrap {
		result = wrapScriptTags(result)
	}
	return result
}

// Beautifier is the primary surface: construct it with the source and
// raw options, then call String() for the result. State is built once
// at construction and the result is frozen from the first call onward.
type Beautifier struct {
	result string
}

// New runs the beautify pass immediately; raw may be nil for defaults.
func New(source string, raw RawOptions) *Beautifier {
	return &Beautifier{result: Beautify(source, NewOptions(raw))}
}

// String returns the beautified source. It is idempotent: repeated
// calls return the same string.
func (b *Beautifier) String() string {
	return b.result
}

// BeautifyString is the one-shot convenience form of New(...).String().
func BeautifyString(source string, raw RawOptions) string {
	return New(source, raw).String()
}
