package scheme

import "errors"

var (
	// ErrInvalidFormat is returned when a scheme name has no "<system>-" prefix.
	ErrInvalidFormat = errors.New("invalid scheme name")
	// ErrUnsupportedSystem is returned for a system token other than base16 or base24.
	ErrUnsupportedSystem = errors.New("unsupported scheme system")
	// ErrSchemeNotFound is returned when no search directory holds the requested scheme.
	ErrSchemeNotFound = errors.New("scheme not found")
	// ErrSchemesMissing is returned when none of the scheme directories exist yet.
	ErrSchemesMissing = errors.New("schemes not found")
	// ErrParse is returned for malformed scheme files.
	ErrParse = errors.New("invalid scheme file")
)
