package catalog

import (
	"net/http"

	"github.com/seismiclabs/marketplace/internal/common/apperrors"
)

// Base catalog error
var (
	ErrCatalogError apperrors.Error = apperrors.New("catalog operation failed").SetStatusCode(http.StatusInternalServerError)
)

// Validation errors
var (
	ErrValidation       apperrors.Error = ErrCatalogError.New("validation failed").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidRating    apperrors.Error = ErrValidation.New("rating must be an integer between 1 and 5").SetStatusCode(http.StatusBadRequest)
	ErrInvalidListing   apperrors.Error = ErrValidation.New("invalid listing definition").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidSortMode  apperrors.Error = ErrValidation.New("unknown sort mode").SetStatusCode(http.StatusBadRequest)
	ErrInvalidFeeType   apperrors.Error = ErrValidation.New("unknown fee type").SetStatusCode(http.StatusBadRequest)
	ErrMalformedVersion apperrors.Error = ErrValidation.New("version must be three dot-separated integers").SetStatusCode(http.StatusBadRequest)
)

// Import errors
var (
	ErrImportFormat apperrors.Error = ErrCatalogError.New("imported document must be a JSON array").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrImportSchema apperrors.Error = ErrImportFormat.New("imported record failed schema validation").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
)

// Persistence errors. Read failures are recovered by the seed fallback and
// never surface to the user; write failures do surface.
var (
	ErrPersistenceRead  apperrors.Error = ErrCatalogError.New("persisted catalog unreadable").SetStatusCode(http.StatusInternalServerError)
	ErrPersistenceWrite apperrors.Error = ErrCatalogError.New("failed to persist catalog").SetStatusCode(http.StatusInternalServerError)
)

// Not found
var (
	ErrListingNotFound apperrors.Error = ErrCatalogError.New("listing not found").SetStatusCode(http.StatusNotFound)
)
