package app

import "errors"

var (
	// ErrCatalogTimeout is returned when loading the catalog for a plan
	// exceeds the fetch deadline.
	ErrCatalogTimeout = errors.New("catalog fetch timed out")

	ErrUnknownCourseType = errors.New("unknown course type")

	// ErrInvalidCatalog is returned when an import file fails validation.
	ErrInvalidCatalog = errors.New("catalog validation failed")
)
