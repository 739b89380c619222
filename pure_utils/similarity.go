package pure_utils

import (
	"strings"

	"github.com/adrg/strutil/metrics"
)

// Similarity returns a normalized textual similarity between a and b, in
// [0, 1]. Inputs are trimmed and case-folded before comparison; equal
// normalized strings score exactly 1. Otherwise the score is (L - d) / L
// where d is the Levenshtein distance (unit insert/delete/replace costs) and
// L the length of the longer normalized string.
//
// The function is symmetric: Similarity(a, b) == Similarity(b, a).
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}

	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	lev.InsertCost = 1
	lev.DeleteCost = 1
	lev.ReplaceCost = 1

	d := lev.Distance(a, b)

	longest := max(len([]rune(a)), len([]rune(b)))
	if d > longest {
		// cannot happen with unit costs, guard anyway
		return 0.0
	}

	return float64(longest-d) / float64(longest)
}
