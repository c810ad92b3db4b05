package catalog

import (
	"math"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects the ordering applied to query results.
type SortMode string

const (
	SortTrending SortMode = "trending"
	SortRating   SortMode = "rating"
	SortNewest   SortMode = "newest"
	SortName     SortMode = "name"
)

// ParseSortMode validates a sort mode string. The empty string maps to the
// default trending order.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case "":
		return SortTrending, nil
	case SortTrending, SortRating, SortNewest, SortName:
		return SortMode(s), nil
	default:
		return "", ErrInvalidSortMode.Msg("unknown sort mode: " + s)
	}
}

const (
	millisPerDay = 24 * 60 * 60 * 1000

	// recencyWindowDays is the age beyond which a listing gets no
	// freshness contribution to its trending score.
	recencyWindowDays = 10.0
	recencyWeight     = 0.1
)

// Ranker orders listings by a sort mode. Name ordering is locale-aware,
// using the collation language the ranker was built with.
type Ranker struct {
	collator *collate.Collator
}

// NewRanker creates a Ranker that collates names in the given language.
func NewRanker(tag language.Tag) *Ranker {
	return &Ranker{collator: collate.New(tag)}
}

// TrendingScore blends social proof and freshness: the log-dampened rating
// count weighted by the average, plus a linear recency boost that decays to
// zero over the recency window.
func (r *Ranker) TrendingScore(l *Listing, now time.Time) float64 {
	rating := l.Rating.Avg * math.Log(1+float64(l.Rating.Count))
	ageDays := float64(now.UnixMilli()-l.CreatedAt) / millisPerDay
	recency := math.Max(0, recencyWindowDays-ageDays) * recencyWeight
	return rating + recency
}

// Sort orders listings in place by the given mode. Sorts are stable, so
// ties resolve to the input order and identical inputs produce identical
// output.
func (r *Ranker) Sort(listings []Listing, mode SortMode, now time.Time) {
	switch mode {
	case SortRating:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Rating.Avg > listings[j].Rating.Avg
		})
	case SortNewest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt > listings[j].CreatedAt
		})
	case SortName:
		sort.SliceStable(listings, func(i, j int) bool {
			return r.collator.CompareString(listings[i].Name, listings[j].Name) < 0
		})
	default: // trending
		sort.SliceStable(listings, func(i, j int) bool {
			return r.TrendingScore(&listings[i], now) > r.TrendingScore(&listings[j], now)
		})
	}
}
