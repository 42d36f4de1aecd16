// ABOUTME: Thin wrapper over sahilm/fuzzy for fuzzy string matching
// ABOUTME: Provides ranked matches and a best-candidate helper for suggestions

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Closest returns the best-scoring item for pattern, if any matches.
func Closest(pattern string, items []string) (string, bool) {
	if pattern == "" {
		return "", false
	}
	matches := Find(pattern, items)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
