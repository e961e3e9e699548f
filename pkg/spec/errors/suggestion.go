package errors

import (
	"fmt"
	"sort"
	"strings"
)

// maxSuggestDistance is the exclusive edit distance below which a candidate
// is offered as a correction.
const maxSuggestDistance = 3

// Suggest returns "Did you mean '<candidate>'?" for the closest candidate
// within maxSuggestDistance edits of unknown, or "" when none is close.
// Ties resolve to the lexically smallest candidate.
func Suggest(unknown string, candidates []string) string {
	if best, ok := Closest(unknown, candidates); ok {
		return fmt.Sprintf("Did you mean '%s'?", best)
	}
	return ""
}

// Closest returns the candidate nearest to unknown by edit distance, if it
// is within maxSuggestDistance. An exact match is not a suggestion.
func Closest(unknown string, candidates []string) (string, bool) {
	if len(candidates) == 0 || unknown == "" {
		return "", false
	}

	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	minDistance := maxSuggestDistance
	var bestMatch string
	for _, c := range sorted {
		if c == unknown {
			return "", false
		}
		if dist := levenshteinDistance(unknown, c); dist < minDistance {
			minDistance = dist
			bestMatch = c
		}
	}
	return bestMatch, bestMatch != ""
}

// SuggestMissingField suggests adding a required field.
func SuggestMissingField(fieldPath string) string {
	return fmt.Sprintf("Add '%s' field to your specification", fieldPath)
}

// SuggestValue suggests allowed values for an enumerated field.
func SuggestValue(fieldPath string, allowed []string) string {
	if len(allowed) == 0 {
		return fmt.Sprintf("Check the value and type for '%s'", fieldPath)
	}
	return fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", "))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	r1, r2 := []rune(s1), []rune(s2)
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // Deletion
				curr[j-1]+1,    // Insertion
				prev[j-1]+cost, // Substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
