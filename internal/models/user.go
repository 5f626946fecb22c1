package models

import (
	"fmt"
	"strings"
)

// User is a credential identity: a person with a username and a stored
// password hash. Admins may record backdated transactions.
//
// A user can be linked to a member's account so that the login flow can
// check the debt rules against their balance.
type User struct {
	PersonIdentity
	username     string
	passwordHash string
	admin        bool
	account      *Account
}

var _ AccountHolder = (*User)(nil)

// NewUser creates a user. Username and password hash must not be blank; the
// hash is stored as-is and never recomputed here.
func NewUser(name, username, passwordHash string, admin bool) (*User, error) {
	id, err := NewPersonIdentity(name)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username must not be blank", ErrInvalidArgument)
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, fmt.Errorf("%w: password hash must not be blank", ErrInvalidArgument)
	}
	return &User{
		PersonIdentity: id,
		username:       username,
		passwordHash:   passwordHash,
		admin:          admin,
	}, nil
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored hash. Used by the persistence layer only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Admin reports whether the user has admin rights.
func (u *User) Admin() bool {
	return u.admin
}

// VerifyPassword reports whether inputHash equals the stored hash. The
// comparison is exact: case-sensitive, no normalization.
func (u *User) VerifyPassword(inputHash string) bool {
	return u.passwordHash == inputHash
}

// LinkAccount associates the user with a member's account for debt checks.
func (u *User) LinkAccount(a *Account) {
	u.account = a
}

// Account returns the linked account, or nil if none is linked.
func (u *User) Account() *Account {
	return u.account
}

func (u *User) String() string {
	return fmt.Sprintf("%s (%s)", u.username, u.Name())
}
