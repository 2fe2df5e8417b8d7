package repository

import "errors"

// ErrNotFound is returned when a catalog lookup matches no row. It is distinct
// from an empty list result.
var ErrNotFound = errors.New("not found")
