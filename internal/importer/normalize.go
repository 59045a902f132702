package importer

import "strings"

// Normalize canonicalizes a raw spreadsheet header into a matchable token:
// lowercase with every rune outside [a-z0-9] removed. The aggressive strip
// is intentional: it has to absorb extra spaces, slashes, parentheses and
// column-width truncation in manually created spreadsheets by bringing both
// headers and catalog aliases into the same alphanumeric-only space.
func Normalize(header string) string {
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
