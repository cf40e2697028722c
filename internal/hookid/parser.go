package hookid

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex matches a single instance key or property id.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// isValidName rejects names that are technically matched but confusing.
func isValidName(name string) bool {
	return name != "." && name != ".." && name != "-"
}

// Parse creates an Address from its canonical "instance#property" form.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("hook cannot be empty")
	}

	instance, property, found := strings.Cut(raw, "#")
	if !found {
		return Address{}, fmt.Errorf("hook %q is missing '#'", raw)
	}
	for _, part := range []string{instance, property} {
		if part == "" {
			return Address{}, fmt.Errorf("hook %q has an empty segment", raw)
		}
		if !nameRegex.MatchString(part) || !isValidName(part) {
			return Address{}, fmt.Errorf("invalid hook segment: %q", part)
		}
	}

	return Address{Instance: instance, Property: property}, nil
}

// ParseEdge creates an Edge from its canonical "source>target" form.
func ParseEdge(raw string) (Edge, error) {
	src, tgt, found := strings.Cut(raw, ">")
	if !found {
		return Edge{}, fmt.Errorf("edge %q is missing '>'", raw)
	}

	source, err := Parse(src)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q source: %w", raw, err)
	}
	target, err := Parse(tgt)
	if err != nil {
		return Edge{}, fmt.Errorf("edge %q target: %w", raw, err)
	}

	return Edge{Source: source, Target: target}, nil
}

// ValidName reports whether name can be used as an instance key or a
// property id.
func ValidName(name string) bool {
	return nameRegex.MatchString(name) && isValidName(name)
}
