package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/anand-gl/jsoncanonicalizer"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/seismiclabs/marketplace/internal/common/apperrors"
	"github.com/seismiclabs/marketplace/internal/common/uuid"
	"github.com/seismiclabs/marketplace/internal/marketplace/kvstore"
)

// DefaultCatalogKey is the fixed logical key the whole catalog is persisted
// under.
const DefaultCatalogKey = "scm_contracts_v1"

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the authoritative listing collection. It is not a process-wide
// singleton: each Store instance is an independent catalog bound to its own
// KV backend, so tests and tools can hold several without shared state.
//
// All operations run to completion on the calling goroutine; the store is
// built for the marketplace's single-user, synchronous model and is not
// safe for concurrent use.
type Store struct {
	kv       kvstore.KV
	key      string
	strict   bool
	now      func() time.Time
	listings []Listing
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCatalogKey overrides the logical key the catalog persists under.
func WithCatalogKey(key string) StoreOption {
	return func(s *Store) { s.key = key }
}

// WithStrictImport makes ImportAll schema-validate every imported record
// instead of trusting the input shape.
func WithStrictImport(strict bool) StoreOption {
	return func(s *Store) { s.strict = strict }
}

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store over the given KV backend. Call Load before any
// other operation.
func NewStore(kv kvstore.KV, opts ...StoreOption) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultCatalogKey,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted catalog. When no catalog has been persisted, or
// the persisted bytes are unreadable or fail to parse, it falls back to the
// seed dataset and persists it immediately so subsequent loads are stable.
// Read failures are recovered here and never surface to the caller.
func (s *Store) Load(ctx context.Context) apperrors.Error {
	data, err := s.kv.Get(ctx, s.key)
	if err == nil {
		var listings []Listing
		if jsonErr := codec.Unmarshal(data, &listings); jsonErr == nil {
			s.listings = listings
			return nil
		} else {
			log.Ctx(ctx).Debug().Err(ErrPersistenceRead.Err(jsonErr)).Msg("persisted catalog corrupt, reseeding")
		}
	} else if !isNotFound(err) {
		log.Ctx(ctx).Debug().Err(ErrPersistenceRead.Err(err)).Msg("persisted catalog unreadable, reseeding")
	}

	s.listings = Seed(s.now())
	return s.Save(ctx)
}

// Save serializes the catalog and overwrites the persisted value. The bytes
// are canonicalized, so saving the same catalog twice writes identical
// bytes.
func (s *Store) Save(ctx context.Context) apperrors.Error {
	if s.listings == nil {
		s.listings = []Listing{}
	}
	data, err := codec.Marshal(s.listings)
	if err != nil {
		return ErrPersistenceWrite.Err(err)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return ErrPersistenceWrite.Err(err)
	}
	if err := s.kv.Set(ctx, s.key, canonical); err != nil {
		return ErrPersistenceWrite.Err(err)
	}
	return nil
}

// Listings returns a copy of the catalog in stored order
// (newest-published-first by construction).
func (s *Store) Listings() []Listing {
	cp := make([]Listing, len(s.listings))
	copy(cp, s.listings)
	return cp
}

// Get returns the listing with the given id.
func (s *Store) Get(id string) (*Listing, apperrors.Error) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			cp := s.listings[i]
			return &cp, nil
		}
	}
	return nil, ErrListingNotFound
}

// Publish validates the submission, constructs a new listing with a fresh
// id, the current time, a single version entry and zero rating, prepends it
// to the catalog, and persists. On validation failure nothing is mutated.
func (s *Store) Publish(ctx context.Context, req *PublishRequest) (*Listing, apperrors.Error) {
	if verrs := req.Validate(); verrs != nil {
		return nil, ErrValidation.Err(verrs)
	}

	feeType := FeeType(req.FeeType)
	if feeType == "" {
		feeType = FeeFree
	}

	listing := Listing{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Author:      req.Author,
		Website:     req.Website,
		Tags:        req.Tags,
		License:     req.License,
		Fee:         FeeDescriptor{Type: feeType, Amount: req.FeeAmount},
		Address:     req.Address,
		Verified:    req.Verified,
		CreatedAt:   s.now().UnixMilli(),
		Versions:    []VersionEntry{{Version: req.Version, URL: req.URL}},
		Rating:      RatingStats{},
	}

	s.listings = append([]Listing{listing}, s.listings...)
	if err := s.Save(ctx); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("id", listing.ID).Str("name", listing.Name).Msg("listing published")
	return &listing, nil
}

// ImportAll wholesale-replaces the catalog with an externally supplied
// document. The document must be a top-level JSON array; on any failure the
// prior catalog is left untouched. Records are decoded leniently, with ids
// and timestamps trusted as supplied, unless strict import is enabled, in
// which case every record must satisfy the listing schema.
func (s *Store) ImportAll(ctx context.Context, data []byte) apperrors.Error {
	if !gjson.ValidBytes(data) {
		return ErrImportFormat.Msg("imported document is not valid JSON")
	}
	if !gjson.ParseBytes(data).IsArray() {
		return ErrImportFormat
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrImportFormat.Err(err)
	}

	if s.strict {
		if err := validateImportedRecords(raw); err != nil {
			return err
		}
	}

	listings := make([]Listing, 0, len(raw))
	for i, record := range raw {
		var l Listing
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &l,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return ErrImportFormat.Err(err)
		}
		if err := decoder.Decode(record); err != nil {
			log.Ctx(ctx).Debug().Int("record", i).Err(err).Msg("imported record decoded partially")
		}
		listings = append(listings, l)
	}

	s.listings = listings
	if err := s.Save(ctx); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Int("count", len(listings)).Msg("catalog imported")
	return nil
}

// Export serializes the catalog as a pretty-printed UTF-8 JSON array for
// the file transfer layer.
func (s *Store) Export(ctx context.Context) ([]byte, apperrors.Error) {
	if s.listings == nil {
		s.listings = []Listing{}
	}
	data, err := json.MarshalIndent(s.listings, "", "  ")
	if err != nil {
		return nil, ErrCatalogError.Err(err)
	}
	return data, nil
}

// ResetToSeed discards the persisted state and the in-memory catalog,
// reloads the seed dataset, and persists it.
func (s *Store) ResetToSeed(ctx context.Context) apperrors.Error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return ErrPersistenceWrite.Err(err)
	}
	s.listings = Seed(s.now())
	if err := s.Save(ctx); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msg("catalog reset to seed")
	return nil
}

// ApplyRating folds a rating value into the listing with the given id and
// persists the updated catalog. Values outside 1..5 are rejected. An
// unknown id is a no-op, not an error.
func (s *Store) ApplyRating(ctx context.Context, id string, value int) apperrors.Error {
	if value < 1 || value > 5 {
		return ErrInvalidRating
	}
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings[i].Rating = s.listings[i].Rating.Add(value)
			return s.Save(ctx)
		}
	}
	log.Ctx(ctx).Debug().Str("id", id).Msg("rating for unknown listing ignored")
	return nil
}

func isNotFound(err apperrors.Error) bool {
	return err != nil && errors.Is(err, kvstore.ErrKeyNotFound)
}
