package models

import (
	"fmt"
	"time"
)

// Transaction records one expense: on a date, the payer fronted the amount
// on behalf of the beneficiaries. Transactions are immutable once created;
// only the settled flag can be flipped afterwards.
//
// The beneficiary list keeps its original order and may contain the same
// member more than once. The amount is deliberately NOT validated here: a
// zero or negative amount only fails when the transaction is submitted to
// the ledger.
type Transaction struct {
	date          time.Time
	amount        float64
	payer         *Member
	beneficiaries []*Member
	description   string
	settled       bool
}

// NewTransaction validates date, payer and beneficiaries and builds the
// record. Violations return an error wrapping ErrInvalidArgument.
func NewTransaction(date time.Time, amount float64, payer *Member, beneficiaries []*Member, description string) (*Transaction, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: transaction date must be set", ErrInvalidArgument)
	}
	if payer == nil {
		return nil, fmt.Errorf("%w: payer must not be nil", ErrInvalidArgument)
	}
	if len(beneficiaries) == 0 {
		return nil, fmt.Errorf("%w: at least one beneficiary is required", ErrInvalidArgument)
	}
	for _, b := range beneficiaries {
		if b == nil {
			return nil, fmt.Errorf("%w: beneficiaries must not contain nil", ErrInvalidArgument)
		}
	}
	copied := make([]*Member, len(beneficiaries))
	copy(copied, beneficiaries)
	return &Transaction{
		date:          date,
		amount:        amount,
		payer:         payer,
		beneficiaries: copied,
		description:   description,
	}, nil
}

// Date returns the calendar date of the expense.
func (t *Transaction) Date() time.Time {
	return t.date
}

// Amount returns the expense amount.
func (t *Transaction) Amount() float64 {
	return t.amount
}

// Payer returns the member who fronted the money.
func (t *Transaction) Payer() *Member {
	return t.payer
}

// Beneficiaries returns a copy of the beneficiary list, duplicates and
// order preserved.
func (t *Transaction) Beneficiaries() []*Member {
	out := make([]*Member, len(t.beneficiaries))
	copy(out, t.beneficiaries)
	return out
}

// SplitSize returns the number of beneficiary entries, duplicates included.
// This is the divisor for the equal split.
func (t *Transaction) SplitSize() int {
	return len(t.beneficiaries)
}

// Description returns the free-text description.
func (t *Transaction) Description() string {
	return t.description
}

// Settled reports whether the transaction has been settled.
func (t *Transaction) Settled() bool {
	return t.settled
}

// SetSettled flips the settled flag.
func (t *Transaction) SetSettled(settled bool) {
	t.settled = settled
}

// Compare orders transactions ascending by date. Amount, payer and
// description do not participate.
func (t *Transaction) Compare(other *Transaction) int {
	return t.date.Compare(other.date)
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s: %s (%.2f EUR, paid by %s)",
		t.date.Format("2006-01-02"), t.description, t.amount, t.payer.Name())
}
