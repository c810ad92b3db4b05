package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func queryFixture(now time.Time) []Listing {
	day := 24 * time.Hour
	return []Listing{
		{
			ID: "1", Name: "ShieldedSwap", Description: "AMM with private balances",
			Category: "DeFi", Author: "Anon Collective", Tags: []string{"dex", "amm"},
			License: "Apache-2.0", Fee: FeeDescriptor{Type: FeeRevShare, Amount: 0.15},
			CreatedAt: now.Add(-6 * day).UnixMilli(), Rating: RatingStats{Avg: 4.1, Count: 42},
		},
		{
			ID: "2", Name: "Walnut Vault", Description: "Encrypted key-value storage",
			Category: "Tools", Author: "Walnut Labs", Tags: []string{"storage", "privacy"},
			License: "MIT", Fee: FeeDescriptor{Type: FeeFree},
			CreatedAt: now.Add(-14 * day).UnixMilli(), Rating: RatingStats{Avg: 4.5, Count: 18},
		},
		{
			ID: "3", Name: "Oblivion Oracle", Description: "Confidential price feeds",
			Category: "Oracles", Author: "Seis Oracles", Tags: []string{"oracle", "feeds"},
			License: "GPL-3.0", Fee: FeeDescriptor{Type: FeeSubscription, Amount: 99},
			CreatedAt: now.Add(-2 * day).UnixMilli(), Rating: RatingStats{Avg: 4.8, Count: 12},
		},
	}
}

func TestQueryFilters(t *testing.T) {
	now := time.Now()
	listings := queryFixture(now)
	r := NewRanker(language.English)

	tests := []struct {
		name   string
		filter Filter
		want   []string // expected ids, order ignored
	}{
		{name: "empty filter matches everything", filter: Filter{}, want: []string{"1", "2", "3"}},
		{name: "text matches name case-insensitively", filter: Filter{Text: "SHIELDED"}, want: []string{"1"}},
		{name: "text matches description", filter: Filter{Text: "price feeds"}, want: []string{"3"}},
		{name: "text matches category", filter: Filter{Text: "tools"}, want: []string{"2"}},
		{name: "text matches author", filter: Filter{Text: "anon"}, want: []string{"1"}},
		{name: "text matches tags", filter: Filter{Text: "privacy"}, want: []string{"2"}},
		{name: "text matching nothing", filter: Filter{Text: "zzz-no-such-entry"}, want: []string{}},
		{name: "license filter", filter: Filter{License: "MIT"}, want: []string{"2"}},
		{name: "fee filter", filter: Filter{FeeType: "rev_share"}, want: []string{"1"}},
		{name: "filters are conjunctive", filter: Filter{Text: "oracle", License: "MIT"}, want: []string{}},
		{name: "unknown fee type matches nothing", filter: Filter{FeeType: "donation"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Query(listings, tt.filter, now)
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestQueryAppliesSortMode(t *testing.T) {
	now := time.Now()
	listings := queryFixture(now)
	r := NewRanker(language.English)

	byName := r.Query(listings, Filter{Sort: SortName}, now)
	assert.Equal(t, []string{"3", "1", "2"}, ids(byName))

	byNewest := r.Query(listings, Filter{Sort: SortNewest}, now)
	assert.Equal(t, []string{"3", "1", "2"}, ids(byNewest))

	byRating := r.Query(listings, Filter{Sort: SortRating}, now)
	assert.Equal(t, []string{"3", "2", "1"}, ids(byRating))
}

func TestQueryDoesNotMutateSource(t *testing.T) {
	now := time.Now()
	listings := queryFixture(now)
	r := NewRanker(language.English)

	_ = r.Query(listings, Filter{Sort: SortName}, now)

	// source order untouched
	assert.Equal(t, []string{"1", "2", "3"}, ids(listings))
}

func ids(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for i := range listings {
		out = append(out, listings[i].ID)
	}
	return out
}
