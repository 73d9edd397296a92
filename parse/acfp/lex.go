package acfp

import "strings"

const defaultCutset = " \t"

// trimEnds removes leading and trailing characters in cutset. Go substrings
// share their backing array, so this adjusts the span without copying.
func trimEnds(s, cutset string) string {
	return strings.Trim(s, cutset)
}

// indexUnquoted returns the index of the first ch that is neither escaped nor
// inside a double-quoted run, or -1. The escape flag toggles on each '\' and
// resets after any other character, so consecutive backslashes toggle it
// repeatedly rather than pairing up. Quoting toggles on each unescaped '"'.
func indexUnquoted(s string, ch byte) int {
	quoted := false
	escaped := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			escaped = !escaped
		case c == '"':
			if !escaped {
				quoted = !quoted
			}
			escaped = false
		case c == ch && !escaped && !quoted:
			return i
		default:
			escaped = false
		}
	}
	return -1
}

// trimComment truncates s at the start of a trailing comment. The scan is
// deliberately quote-blind: a '#' inside a quoted value still starts a
// comment, unlike the quote-aware delimiter search. It also stops at the
// first '#' or '/' it sees, so a lone '/' shields any later '#' on the line.
// Both behaviors are part of the accepted-input format and must not be
// "fixed" without changing what inputs parse.
func trimComment(s string) string {
	p := strings.IndexAny(s, "#/")
	if p < 0 {
		return s
	}
	if s[p] == '#' {
		return s[:p]
	}
	if p+1 < len(s) && s[p+1] == '/' {
		return s[:p]
	}
	return s
}

// unquote strips one enclosing front/back pair if s begins with front. An
// opening character without the matching closer is an unterminated-quote
// error naming the 1-based line. Spans not starting with front pass through
// verbatim.
func unquote(s string, line int, front, back byte) (string, error) {
	if len(s) == 0 || s[0] != front {
		return s, nil
	}
	s = s[1:]
	if len(s) == 0 || s[len(s)-1] != back {
		return "", &ParseError{Line: line, Text: s, Err: ErrUnterminatedQuote}
	}
	return s[:len(s)-1], nil
}
