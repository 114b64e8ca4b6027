package cache

import "errors"

var (
	// ErrMiss indicates that no record exists for the requested size.
	ErrMiss = errors.New("cache: no record for this size")
	// ErrCorrupt indicates a record that exists but does not decode.
	ErrCorrupt = errors.New("cache: corrupt record")
	// ErrBadLevel indicates a size below 1.
	ErrBadLevel = errors.New("cache: size must be at least 1")
)
