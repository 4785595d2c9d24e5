package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCriteria signals filter criteria that do not fit the catalog.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrInvalidRating signals a skill rating outside [0,100] or a malformed rating set.
	ErrInvalidRating = errors.New("invalid rating")
	// ErrInvalidCatalog signals malformed catalog content.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
