// Package storage defines the snapshot persistence contract. The core hands
// an opaque, complete snapshot of its state to a Store and expects either a
// fully restored equivalent back or ErrNotFound; partial loads do not exist.
package storage

import (
	"context"
	"errors"
	"time"
)

// SnapshotVersion is the current snapshot format version. Stores record it
// alongside the data so future formats can be told apart.
const SnapshotVersion = 1

// ErrNotFound signals that no saved state exists and the caller should
// start empty.
var ErrNotFound = errors.New("no saved state")

// Snapshot is the flattened, name-keyed form of the whole application
// state: member records, user records and transaction records with explicit
// fields instead of an opaque object graph.
type Snapshot struct {
	Version      int
	Members      []MemberRecord
	Users        []UserRecord
	Transactions []TransactionRecord
}

// MemberRecord persists a member together with their stored account
// balance. The balance is the account's own running total, which is
// independent of the ledger-derived balance.
type MemberRecord struct {
	Name    string
	Balance float64
}

// UserRecord persists a login identity. LinkedMember names the member whose
// account the user is linked to, empty when unlinked.
type UserRecord struct {
	Name         string
	Username     string
	PasswordHash string
	Admin        bool
	LinkedMember string
}

// TransactionRecord persists one expense. The payer and beneficiaries are
// referenced by member name; the beneficiary list keeps order and
// duplicates. ID is assigned by the store on save.
type TransactionRecord struct {
	ID            string
	Date          time.Time
	Amount        float64
	Payer         string
	Beneficiaries []string
	Description   string
	Settled       bool
}

// Store is the persistence collaborator. Save replaces any previously saved
// state atomically; Load returns the last saved snapshot or ErrNotFound.
type Store interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Close() error
}
