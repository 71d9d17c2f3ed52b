package util

import "strings"

// NeedsQuote reports whether s must be quoted to survive a round trip through
// a line-oriented configuration file: it is empty or contains whitespace, a
// quote character or the comment character.
func NeedsQuote(s string, comment rune) bool {
	if s == "" || strings.ContainsAny(s, " \t'\"") {
		return true
	}

	return comment != 0 && strings.ContainsRune(s, comment)
}

// Quote wraps s in quotes when NeedsQuote says so. Double quotes are used
// unless s contains one, then single quotes. A value holding both kinds is
// written as adjacent spans, each quoted with the kind it does not contain.
func Quote(s string, comment rune) string {
	if !NeedsQuote(s, comment) {
		return s
	}

	switch {
	case !strings.ContainsRune(s, '"'):
		return `"` + s + `"`
	case !strings.ContainsRune(s, '\''):
		return `'` + s + `'`
	}

	var sb strings.Builder
	wrap := '"'
	sb.WriteRune(wrap)
	for _, r := range s {
		if r == wrap {
			sb.WriteRune(wrap)
			wrap = '\'' + '"' - wrap
			sb.WriteRune(wrap)
		}
		sb.WriteRune(r)
	}
	sb.WriteRune(wrap)

	return sb.String()
}
