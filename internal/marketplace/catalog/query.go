package catalog

import (
	"strings"
	"time"
)

// Filter is the query parameter set held by the presentation layer. All
// filters are conjunctive; empty fields match everything.
type Filter struct {
	Text    string   // case-insensitive substring over name, description, category, author, tags
	License string   // exact license match
	FeeType string   // exact fee type match
	Sort    SortMode // ordering of the result
}

// Matches reports whether a listing passes every filter.
func (f Filter) Matches(l *Listing) bool {
	if f.Text != "" && !strings.Contains(l.haystack(), strings.ToLower(f.Text)) {
		return false
	}
	if f.License != "" && l.License != f.License {
		return false
	}
	if f.FeeType != "" && string(l.Fee.Type) != f.FeeType {
		return false
	}
	return true
}

// Query filters listings and orders the survivors by the filter's sort
// mode. The result is a new slice; the source is never reordered.
func (r *Ranker) Query(listings []Listing, f Filter, now time.Time) []Listing {
	result := make([]Listing, 0, len(listings))
	for i := range listings {
		if f.Matches(&listings[i]) {
			result = append(result, listings[i])
		}
	}
	r.Sort(result, f.Sort, now)
	return result
}
