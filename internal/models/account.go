package models

import "sync"

// Account holds the running balance of one member. The balance starts at 0
// and changes only through UpdateBalance. Accounts are created together with
// their owning Member and are never reassigned.
//
// The stored balance is independent of the balance the ledger derives from
// the transaction history; the two are not synchronized.
type Account struct {
	mu      sync.Mutex
	owner   *Member
	balance float64
}

func newAccount(owner *Member) *Account {
	return &Account{owner: owner}
}

// Owner returns the member this account belongs to.
func (a *Account) Owner() *Member {
	return a.owner
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// UpdateBalance adds delta to the balance. Negative deltas record spending,
// positive deltas record deposits. No bounds are enforced.
func (a *Account) UpdateBalance(delta float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += delta
}

// Compare orders accounts ascending by balance, most negative first.
func (a *Account) Compare(other *Account) int {
	left, right := a.Balance(), other.Balance()
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}
