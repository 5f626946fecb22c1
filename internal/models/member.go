package models

// Member is a named participant of the household. A fresh Account is created
// for every member at construction and lives as long as the member does.
//
// Members are identified by name throughout the ledger; registries keep
// names unique so that name equality identifies a member unambiguously.
type Member struct {
	PersonIdentity
	account *Account
}

var _ AccountHolder = (*Member)(nil)

// NewMember creates a member with the given name and a fresh account.
func NewMember(name string) (*Member, error) {
	id, err := NewPersonIdentity(name)
	if err != nil {
		return nil, err
	}
	m := &Member{PersonIdentity: id}
	m.account = newAccount(m)
	return m, nil
}

// Account returns the member's account.
func (m *Member) Account() *Account {
	return m.account
}
