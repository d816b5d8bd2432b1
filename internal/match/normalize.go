package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a column or field identifier for lookup.
// The normalization pipeline:
// 1. Strip one level of identifier quoting ("x", `x`, [x]).
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	s = unquote(s)

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func unquote(s string) string {
	if l := len(s); l >= 2 {
		switch {
		case s[0] == '"' && s[l-1] == '"',
			s[0] == '`' && s[l-1] == '`',
			s[0] == '[' && s[l-1] == ']':
			return s[1 : l-1]
		}
	}

	return s
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
