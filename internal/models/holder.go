package models

// AccountHolder is the capability of yielding a name and an account. Both
// Member and User implement it; call sites that look up debt rules depend
// only on this interface, never on the concrete identity type.
//
// Account may return nil for identities without a linked account; callers
// must check before dereferencing.
type AccountHolder interface {
	Name() string
	Account() *Account
}
