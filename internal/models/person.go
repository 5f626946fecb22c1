package models

import (
	"fmt"
	"strings"
)

// PersonIdentity is the shared name-bearing identity embedded in Member and
// User. The name is validated at construction and on every rename.
type PersonIdentity struct {
	name string
}

// NewPersonIdentity creates an identity with the given display name.
// The name must not be empty or all-whitespace.
func NewPersonIdentity(name string) (PersonIdentity, error) {
	if strings.TrimSpace(name) == "" {
		return PersonIdentity{}, fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	return PersonIdentity{name: name}, nil
}

// Name returns the display name.
func (p PersonIdentity) Name() string {
	return p.name
}

// SetName renames the identity, applying the same validation as construction.
func (p *PersonIdentity) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}
	p.name = name
	return nil
}

// Compare orders identities alphabetically by name.
func (p PersonIdentity) Compare(other PersonIdentity) int {
	return strings.Compare(p.name, other.name)
}

func (p PersonIdentity) String() string {
	return p.name
}
