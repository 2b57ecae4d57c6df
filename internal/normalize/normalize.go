// Package normalize cleans raw model output into user-presentable text.
package normalize

import (
	"regexp"
	"strings"
)

// Rules describes the cleanup applied to one task's output. Steps run in a
// fixed order: trim, strip one surrounding quote pair, collapse newlines,
// strip the known prefix, then substitute the fallback for degenerate output.
type Rules struct {
	CollapseNewlines bool
	StripPrefix      string // case-insensitive, e.g. "Translation:"
	MinLength        int
	Fallback         string
}

var newlineRuns = regexp.MustCompile(`\n+`)

// quote characters stripped from the extremes, straight and curly
const quoteChars = "\"'“”‘’"

// Clean applies the rules to raw backend text. The result is never empty:
// anything shorter than MinLength becomes the fallback sentence.
func Clean(raw string, r Rules) string {
	text := strings.TrimSpace(raw)

	text = stripQuotes(text)

	if r.CollapseNewlines {
		text = newlineRuns.ReplaceAllString(text, " ")
	}

	if r.StripPrefix != "" && len(text) >= len(r.StripPrefix) &&
		strings.EqualFold(text[:len(r.StripPrefix)], r.StripPrefix) {
		text = text[len(r.StripPrefix):]
	}

	text = strings.TrimSpace(text)

	if len(text) < r.MinLength {
		return r.Fallback
	}
	return text
}

// stripQuotes removes at most one leading and one trailing quote character.
func stripQuotes(s string) string {
	rs := []rune(s)
	if len(rs) > 0 && strings.ContainsRune(quoteChars, rs[0]) {
		rs = rs[1:]
	}
	if len(rs) > 0 && strings.ContainsRune(quoteChars, rs[len(rs)-1]) {
		rs = rs[:len(rs)-1]
	}
	return strings.TrimSpace(string(rs))
}
