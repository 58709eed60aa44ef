package model

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestionLimit caps how far a name may be from a known one before we stop
// offering it as a correction.
const suggestionLimit = 3

// NearestName returns the candidate closest to target by edit distance,
// case-insensitive. The second return is false when no candidate is within
// the suggestion limit.
func NearestName(target string, candidates []string) (string, bool) {
	best := ""
	bestDist := suggestionLimit + 1
	lt := strings.ToLower(target)
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(lt, strings.ToLower(cand))
		if d < bestDist {
			best = cand
			bestDist = d
		}
	}
	if best == "" || bestDist > suggestionLimit {
		return "", false
	}
	return best, true
}
