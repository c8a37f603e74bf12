package inventory

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/revenda/internal/database/repository"
)

// Suggest looks for the model word or plate closest to the query among the
// vehicles allowed by the status selector. It is used to offer a hint when a
// search comes back empty.
func Suggest(vehicles []repository.Vehicle, f Filter) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return "", false
	}
	limit := max(1, utf8.RuneCountInString(q)/3)

	best, bestDist := "", limit+1
	for _, v := range vehicles {
		if !f.Status.Matches(v.Status) {
			continue
		}
		for _, cand := range append(strings.Fields(v.Model), v.Plate) {
			dist := levenshtein.ComputeDistance(q, strings.ToLower(cand))
			if dist < bestDist {
				best, bestDist = cand, dist
			}
		}
	}
	if best == "" || bestDist > limit {
		return "", false
	}
	return best, true
}
