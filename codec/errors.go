// SPDX-License-Identifier: MIT
// Package codec: sentinel error set. Decoding failures inside a single
// expression surface as expr.ErrMalformed, wrapped with the entry name.

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension that
	// is not one of json, yaml/yml or toml.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrBadShape is returned when a vector or matrix entry has a component
	// count that is not 2/3/4 (vectors) or 4/9/16 (matrices).
	ErrBadShape = errors.New("codec: invalid shape")

	// ErrNotFound is returned when a named entry is absent from the document.
	ErrNotFound = errors.New("codec: entry not found")

	// ErrTooDeep is returned when a decoded expression exceeds the configured
	// maximum depth.
	ErrTooDeep = errors.New("codec: expression too deep")
)

// codecErrorf wraps an underlying error with the given tag.
func codecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
