// Package catalog implements the contract marketplace core: the listing
// model, version ordering, rating accumulation, ranking, querying, and the
// catalog store that owns the authoritative listing collection.
package catalog

import (
	"fmt"
	"strings"
)

// FeeType identifies the monetization model attached to a listing.
type FeeType string

const (
	FeeFree         FeeType = "free"
	FeeOneTime      FeeType = "one_time"
	FeeSubscription FeeType = "subscription"
	FeeRevShare     FeeType = "rev_share"
)

// KnownFeeTypes lists the recognized fee types. Anything else is treated as
// a custom model for display purposes; it is preserved as-is.
var KnownFeeTypes = []FeeType{FeeFree, FeeOneTime, FeeSubscription, FeeRevShare}

// FeeDescriptor is the monetization model of a listing. Amount is a currency
// value for one_time and subscription, a fraction in [0,1] for rev_share,
// and ignored for free.
type FeeDescriptor struct {
	Type   FeeType `json:"type"`
	Amount float64 `json:"amount"`
}

// Label renders the fee in display form.
func (f FeeDescriptor) Label() string {
	switch f.Type {
	case FeeFree:
		return "Free"
	case FeeOneTime:
		return fmt.Sprintf("One-time $%.2f", f.Amount)
	case FeeSubscription:
		return fmt.Sprintf("Sub $%.2f/mo", f.Amount)
	case FeeRevShare:
		return fmt.Sprintf("Rev-share %.0f%%", f.Amount*100)
	default:
		return "Custom"
	}
}

// VersionEntry is a single released version of a listing. The checksum is an
// opaque display string and is never verified.
type VersionEntry struct {
	Version  string `json:"version"`
	URL      string `json:"url"`
	Checksum string `json:"checksum"`
}

// Listing is one catalog entry. ID and CreatedAt are assigned at creation
// and never change. CreatedAt is milliseconds since the Unix epoch.
type Listing struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Author      string         `json:"author"`
	Website     string         `json:"website"`
	Tags        []string       `json:"tags"`
	License     string         `json:"license"`
	Fee         FeeDescriptor  `json:"fee"`
	Address     string         `json:"address"`
	Verified    bool           `json:"verified"`
	CreatedAt   int64          `json:"createdAt"`
	Versions    []VersionEntry `json:"versions"`
	Rating      RatingStats    `json:"rating"`
}

// Latest returns the newest version entry of the listing, or nil if the
// listing has no versions.
func (l *Listing) Latest() *VersionEntry {
	return Latest(l.Versions)
}

// haystack concatenates the searchable fields for free-text matching.
func (l *Listing) haystack() string {
	parts := []string{l.Name, l.Description, l.Category, l.Author, strings.Join(l.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
