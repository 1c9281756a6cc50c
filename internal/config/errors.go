package config

import "errors"

var (
	// ErrInvalidShell is returned when the shell template does not contain exactly one "{}".
	ErrInvalidShell = errors.New("invalid shell config")
	// ErrDuplicateItem is returned when two items share a name.
	ErrDuplicateItem = errors.New("duplicate item name")
	// ErrInvalidItem is returned for an item missing required fields.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidScheme is returned for a malformed default or preferred scheme.
	ErrInvalidScheme = errors.New("invalid scheme in config")
)
