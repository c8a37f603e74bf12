package inventory

import (
	"strings"

	"github.com/jask/revenda/internal/database/repository"
)

// StatusFilter selects either every vehicle or a single status.
type StatusFilter string

// FilterAll matches every status.
const FilterAll StatusFilter = "todos"

// FilterChoices returns the selector options in on-screen order.
func FilterChoices() []StatusFilter {
	out := []StatusFilter{FilterAll}
	for _, s := range repository.Statuses() {
		out = append(out, StatusFilter(s))
	}
	return out
}

// Matches reports whether a vehicle with status s passes the selector.
func (f StatusFilter) Matches(s repository.Status) bool {
	return f == FilterAll || f == "" || repository.Status(f) == s
}

func (f StatusFilter) Label() string {
	if f == FilterAll || f == "" {
		return "Todos"
	}
	return repository.Status(f).Label()
}

// Filter is the combination of status selector and search query.
type Filter struct {
	Status StatusFilter
	Query  string
}

// Apply returns the vehicles that match f, in their original order.
// The query is matched case-insensitively as a substring of model or plate;
// an empty query matches everything.
func Apply(vehicles []repository.Vehicle, f Filter) []repository.Vehicle {
	q := strings.ToLower(f.Query)
	out := make([]repository.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !f.Status.Matches(v.Status) {
			continue
		}
		if !matchesQuery(v, q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesQuery(v repository.Vehicle, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Model), lowerQuery) ||
		strings.Contains(strings.ToLower(v.Plate), lowerQuery)
}
