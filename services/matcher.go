package services

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MatchScore rates how closely a listing title matches the search term on a
// 0–100 scale, 100 meaning identical. The metric is a Levenshtein-derived
// ratio, so it tolerates reordering, insertions and deletions rather than
// requiring exact or substring equality. Both sides are case-folded first.
func MatchScore(title, term string) int {
	return fuzzy.Ratio(strings.ToLower(title), strings.ToLower(term))
}
