package importer

import "strings"

// Match resolves one raw header to a schema field using a five-tier
// precedence ladder, evaluated in order, first hit wins:
//
//  1. exact alias match
//  2. prefix containment in either direction (header truncated by the
//     spreadsheet tool, or alias shorter than a verbose header); only
//     attempted for normalized headers of length >= 2
//  3. exact match on the normalized canonical field name
//  4. domain keyword substring, in rule order
//  5. canonical field name as substring
//
// The ladder trades precision for recall deliberately: tiers run from most
// to least specific, so an exact or alias match is never overridden by a
// looser substring hit. Headers no tier resolves stay unmapped.
func Match(header string) (Field, bool) {
	h := Normalize(header)
	if h == "" {
		return Unmapped, false
	}

	// Tier 1: exact alias match
	for _, spec := range catalog {
		for _, alias := range spec.aliases {
			if h == alias {
				return spec.field, true
			}
		}
	}

	// Tier 2: prefix containment, both directions. Single-character tokens
	// are excluded to avoid false positives.
	if len(h) >= 2 {
		for _, spec := range catalog {
			for _, alias := range spec.aliases {
				if strings.HasPrefix(alias, h) || strings.HasPrefix(h, alias) {
					return spec.field, true
				}
			}
		}
	}

	// Tier 3: exact canonical field name
	for _, spec := range catalog {
		if h == Normalize(string(spec.field)) {
			return spec.field, true
		}
	}

	// Tier 4: domain keyword substring
	for _, rule := range keywordRules {
		if strings.Contains(h, rule.keyword) {
			return rule.field, true
		}
	}

	// Tier 5: canonical field name substring
	for _, spec := range catalog {
		if strings.Contains(h, Normalize(string(spec.field))) {
			return spec.field, true
		}
	}

	return Unmapped, false
}
