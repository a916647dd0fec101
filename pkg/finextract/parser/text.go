package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var punctuationReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
)

// CleanMetric normalizes a metric label for allow-list matching.
// Compatibility forms (non-breaking spaces, full-width punctuation) are folded,
// typographic quotes and dashes become ASCII, runs of whitespace collapse to a
// single space and one trailing colon is removed.
func CleanMetric(s string) string {
	s = norm.NFKC.String(s)
	s = punctuationReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, ":")
	return strings.TrimSpace(s)
}

// IsBlank reports whether every cell is empty or whitespace.
func IsBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
