package econpath

import "github.com/kailas-cloud/econpath/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrInvalidCriteria = domain.ErrInvalidCriteria
	ErrInvalidRating   = domain.ErrInvalidRating
	ErrInvalidCatalog  = domain.ErrInvalidCatalog
)
