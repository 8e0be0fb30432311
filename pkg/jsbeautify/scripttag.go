package jsbeautify

import "strings"

const (
	scriptOpenTag  = `<script type="text/javascript">`
	scriptCloseTag = `</script>`
)

// stripScriptTags removes one occurrence each of the script open/close
// markers and reports whether anything was actually removed. The
// detection test is exactly "did the total length change after
// replacing both substrings" — a partial or missing marker leaves the
// length untouched and wrap comes back false.
func stripScriptTags(source string) (stripped string, wrap bool) {
	replaced := strings.Replace(source, scriptOpenTag, "", 1)
	replaced = strings.Replace(replaced, scriptCloseTag, "", 1)
	if len(replaced) != len(source) {
		return replaced, true
	}
	return source, false
}

func wrapScriptTags(body string) string {
	return scriptOpenTag + body + scriptCloseTag
}
