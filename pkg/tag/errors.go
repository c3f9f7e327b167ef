package tag

import "errors"

var (
	// ErrEmptyName is returned by New when the tag name is empty or
	// whitespace only.
	ErrEmptyName = errors.New("tag: empty name")

	// ErrInvalidName is returned by New when the tag name contains
	// characters outside letters, digits, and hyphens, or does not start
	// with a letter.
	ErrInvalidName = errors.New("tag: invalid name")
)
