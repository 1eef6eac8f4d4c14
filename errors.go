// File: clac/errors.go
package clac

import "errors"

var (
	// ErrNoConfigKey is returned when no layer holds the requested key.
	ErrNoConfigKey = errors.New("configuration key not found")

	// ErrMissingLayer is returned when a named layer lookup or removal
	// references a layer that was never added.
	ErrMissingLayer = errors.New("configuration layer not found")
)
