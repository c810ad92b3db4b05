// Package kvstore provides the local key-value byte store backing the
// catalog. The catalog persists its whole dataset as one value under a
// single fixed key, so the interface is deliberately minimal: get, set,
// delete.
package kvstore

import (
	"context"
	"net/http"

	"github.com/seismiclabs/marketplace/internal/common/apperrors"
)

// KV is the persistence collaborator of the catalog store.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, apperrors.Error)
	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) apperrors.Error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) apperrors.Error
	// Close releases the underlying resources.
	Close() error
}

var (
	ErrKVStore apperrors.Error = apperrors.New("kvstore operation failed").SetStatusCode(http.StatusInternalServerError)

	// ErrKeyNotFound indicates the key has no stored value.
	ErrKeyNotFound apperrors.Error = ErrKVStore.New("key not found").SetStatusCode(http.StatusNotFound)

	// ErrCorruptValue indicates the stored bytes could not be decoded.
	ErrCorruptValue apperrors.Error = ErrKVStore.New("stored value is corrupt").SetStatusCode(http.StatusInternalServerError)
)
