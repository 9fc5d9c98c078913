// Package scoring implements the multi-category weighted compatibility
// engine that matches a user's retirement preferences against candidate
// town profiles. It is a pure library: no I/O, no shared state, every
// score clamped to [0,100].
package scoring

import "strings"

// normalizeValue canonicalizes a string for comparison: trimmed and
// lower-cased. Original casing is preserved by callers for display.
func normalizeValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSet maps every element through normalizeValue and deduplicates.
// A nil or empty input yields an empty set, never nil dereferences.
func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		n := normalizeValue(v)
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// anyOverlap reports whether the two normalized sets share at least one element.
func anyOverlap(a, b map[string]struct{}) bool {
	// Iterate the smaller set.
	if len(b) < len(a) {
		a, b = b, a
	}
	for v := range a {
		if _, ok := b[v]; ok {
			return true
		}
	}
	return false
}

// overlapCount returns how many elements of wanted exist in have.
func overlapCount(wanted, have map[string]struct{}) int {
	n := 0
	for v := range wanted {
		if _, ok := have[v]; ok {
			n++
		}
	}
	return n
}
