package scheme

import (
	"fmt"
	"strings"
)

// Identifier names a scheme as "<system>-<slug>", e.g. base16-oceanicnext.
type Identifier struct {
	System System
	Slug   string
}

// ParseIdentifier splits a full scheme name at its first "-".
func ParseIdentifier(fullName string) (Identifier, error) {
	systemToken, slug, found := strings.Cut(fullName, "-")
	if !found {
		return Identifier{}, fmt.Errorf("%w %q: expected <system>-<name>, e.g. base16-mocha", ErrInvalidFormat, fullName)
	}
	sys, err := ParseSystem(systemToken)
	if err != nil {
		return Identifier{}, err
	}
	if slug == "" {
		return Identifier{}, fmt.Errorf("%w %q: scheme name after %q is empty", ErrInvalidFormat, fullName, systemToken+"-")
	}
	return Identifier{System: sys, Slug: slug}, nil
}

// String renders the full name.
func (id Identifier) String() string {
	return string(id.System) + "-" + id.Slug
}
