package profile

import "strings"

// NormalizePhrase canonicalizes a free-text phrase for comparison: trimmed,
// lowercased, inner whitespace collapsed to single spaces.
func NormalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeSet normalizes every phrase and drops duplicates and empty entries,
// preserving first-seen order.
func NormalizeSet(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	result := make([]string, 0, len(phrases))

	for _, phrase := range phrases {
		normalized := NormalizePhrase(phrase)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
