package scheme

import (
	"fmt"
	"strings"
)

// System is a scheme system, the family of fixed colour slots a palette fills.
type System string

const (
	Base16 System = "base16"
	Base24 System = "base24"
)

// SupportedSystems returns the systems in their canonical order.
func SupportedSystems() []System {
	return []System{Base16, Base24}
}

func (s System) String() string {
	return string(s)
}

// Valid reports whether s is one of the supported systems.
func (s System) Valid() bool {
	for _, sys := range SupportedSystems() {
		if s == sys {
			return true
		}
	}
	return false
}

// Slots returns the palette slot names of the system in order.
func (s System) Slots() []string {
	count := 16
	if s == Base24 {
		count = 24
	}
	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, fmt.Sprintf("base%02X", i))
	}
	return slots
}

// ParseSystem validates a system token.
func ParseSystem(token string) (System, error) {
	sys := System(token)
	if !sys.Valid() {
		return "", fmt.Errorf("%w %q: valid systems are %s", ErrUnsupportedSystem, token, supportedList())
	}
	return sys, nil
}

func supportedList() string {
	names := make([]string, 0, len(SupportedSystems()))
	for _, sys := range SupportedSystems() {
		names = append(names, string(sys))
	}
	return strings.Join(names, ", ")
}
