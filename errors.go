package ggrgen

import "errors"

var (
	// ErrFormat indicates malformed gradient input.
	ErrFormat = errors.New("invalid gradient format")

	// ErrUnsupported indicates a recognized but unsupported gradient feature.
	ErrUnsupported = errors.New("unsupported gradient feature")
)
