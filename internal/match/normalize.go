package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a document key for fuzzy comparison: it is lowercased
// and stripped of separators, so "Quantity", "quan_tity" and "quantity"
// normalize to the same text.
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.TrimSpace(s) {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
