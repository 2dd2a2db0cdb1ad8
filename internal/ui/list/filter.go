package list

import "github.com/sahilm/fuzzy"

// fuzzyMatches returns the indices of labels matching the query, best match
// first.
func fuzzyMatches(query string, labels []string) []int {
	matches := fuzzy.Find(query, labels)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}
	return out
}
