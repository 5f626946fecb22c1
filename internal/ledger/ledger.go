// Package ledger implements the balance engine: an append-only transaction
// history and the equal-split accounting derived from it.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/JonaJoost/wg-abrechner/internal/models"
)

// ErrInvalidAmount is returned by AddTransaction for amounts of zero or
// less. It is distinct from models.ErrInvalidArgument so callers can show a
// domain-specific message.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Ledger owns the append-only list of transactions and is the single source
// of truth for balance queries. Entries are never edited or removed.
//
// A coarse mutex guards the history; all operations are synchronous and run
// to completion.
type Ledger struct {
	mu           sync.Mutex
	transactions []*models.Transaction
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddTransaction appends t to the history. A nil transaction is an
// invalid-argument error; a non-positive amount is an ErrInvalidAmount.
// This is the only place amount positivity is enforced: transactions with
// non-positive amounts are constructible but never enter a ledger.
func (l *Ledger) AddTransaction(t *models.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction must not be nil", models.ErrInvalidArgument)
	}
	if t.Amount() <= 0 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidAmount, t.Amount())
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, t)
	return nil
}

// Balance derives the member's balance from the full history.
//
// The payer of a transaction is credited the whole amount: they fronted the
// money and recover their own share along with everyone else's. Every
// member appearing in the beneficiary list is debited amount/split-size.
// The split size counts every entry including duplicates, but a duplicated
// member is debited only once per transaction (membership, not
// multiplicity).
//
// A member with no transactions has balance 0; this is never an error.
func (l *Ledger) Balance(member *models.Member) float64 {
	if member == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var balance float64
	for _, t := range l.transactions {
		if t.Payer().Name() == member.Name() {
			balance += t.Amount()
		}
		if isBeneficiary(t, member) {
			balance -= t.Amount() / float64(t.SplitSize())
		}
	}
	return balance
}

// isBeneficiary is a membership test by name equality.
func isBeneficiary(t *models.Transaction, member *models.Member) bool {
	for _, b := range t.Beneficiaries() {
		if b.Name() == member.Name() {
			return true
		}
	}
	return false
}

// FindByDate returns every transaction that occurred on the given calendar
// day, in insertion order.
func (l *Ledger) FindByDate(date time.Time) []*models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []*models.Transaction
	for _, t := range l.transactions {
		if sameDay(t.Date(), date) {
			result = append(result, t)
		}
	}
	return result
}

// StaleUnsettled returns every unsettled transaction older than maxDays
// relative to now, in insertion order.
func (l *Ledger) StaleUnsettled(now time.Time, maxDays int) []*models.Transaction {
	cutoff := now.AddDate(0, 0, -maxDays)

	l.mu.Lock()
	defer l.mu.Unlock()

	var result []*models.Transaction
	for _, t := range l.transactions {
		if !t.Settled() && t.Date().Before(cutoff) {
			result = append(result, t)
		}
	}
	return result
}

// SortedByDate returns a new slice sorted ascending by date, oldest first.
// Ties keep their insertion order. The history itself is not reordered.
func (l *Ledger) SortedByDate() []*models.Transaction {
	sorted := l.snapshot()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().Before(sorted[j].Date())
	})
	return sorted
}

// SortedByAmount returns a new slice sorted descending by amount, largest
// first. Ties keep their insertion order.
func (l *Ledger) SortedByAmount() []*models.Transaction {
	sorted := l.snapshot()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount() > sorted[j].Amount()
	})
	return sorted
}

// Transactions returns a snapshot of the history in insertion order.
// Mutating the returned slice does not affect the ledger.
func (l *Ledger) Transactions() []*models.Transaction {
	return l.snapshot()
}

// Count returns the number of recorded transactions.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.transactions)
}

func (l *Ledger) snapshot() []*models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MemberBalance is one row of the balance table the presentation layer
// renders.
type MemberBalance struct {
	Name    string
	Balance float64
}

// Balances derives the balance of every given member and returns the table
// sorted ascending by balance, highest debt first.
func (l *Ledger) Balances(members []*models.Member) []MemberBalance {
	entries := make([]MemberBalance, 0, len(members))
	for _, m := range members {
		entries = append(entries, MemberBalance{Name: m.Name(), Balance: l.Balance(m)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance < entries[j].Balance
	})
	return entries
}
