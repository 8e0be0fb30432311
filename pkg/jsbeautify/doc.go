// Package jsbeautify re-indents and re-spaces JavaScript source without
// validating it or building an AST. It is a single-pass tokenizer coupled
// to a stateful printer: the printer pulls tokens from the tokenizer one
// at a time and decides, per adjacent token pair, whether to insert a
// space, a newline, an indent, an outdent, or nothing.
//
// The package does not support template literals, destructuring,
// arrow functions, `let`/`const`, JSX, or any other ES6+ syntax; it
// targets the same feature set a pre-ES6 beautifier would.
package jsbeautify
