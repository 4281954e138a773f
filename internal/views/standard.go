package views

import "strings"

// NormalizeStandardTitle is the canonical form stored in the standard task list.
func NormalizeStandardTitle(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}

// ContainsStandardTitle reports whether the list already holds the title.
func ContainsStandardTitle(list []string, title string) bool {
	normalized := NormalizeStandardTitle(title)
	for _, existing := range list {
		if NormalizeStandardTitle(existing) == normalized {
			return true
		}
	}
	return false
}

// AddStandardTitle appends the normalized title unless it is empty or already present.
func AddStandardTitle(list []string, title string) ([]string, bool) {
	normalized := NormalizeStandardTitle(title)
	if normalized == "" || ContainsStandardTitle(list, normalized) {
		return list, false
	}
	next := make([]string, len(list), len(list)+1)
	copy(next, list)
	return append(next, normalized), true
}
