// Package sqlite provides a SQLite-backed implementation of storage.Store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/JonaJoost/wg-abrechner/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const dateLayout = "2006-01-02"

// SQLiteStore implements storage.Store using SQLite. Every Save replaces
// the previous snapshot inside one SQL transaction, so the database always
// holds either the old state or the new one, never a mix.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a SQLiteStore at the given database path. Parent directories
// are created and the schema is set up automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save writes the snapshot, replacing any previously saved state.
func (s *SQLiteStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot must not be nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"beneficiaries", "transactions", "users", "members", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	version := snap.Version
	if version == 0 {
		version = storage.SnapshotVersion
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO meta (id, version, saved_at) VALUES (1, ?, ?)",
		version, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert meta: %w", err)
	}

	for i, m := range snap.Members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO members (position, name, balance) VALUES (?, ?, ?)",
			i, m.Name, m.Balance,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member %q: %w", m.Name, err)
		}
	}

	for i, u := range snap.Users {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO users (position, username, name, password_hash, admin, linked_member) VALUES (?, ?, ?, ?, ?, ?)",
			i, u.Username, u.Name, u.PasswordHash, u.Admin, u.LinkedMember,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
		}
	}

	for i := range snap.Transactions {
		rec := &snap.Transactions[i]
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO transactions (id, position, date, amount, payer, description, settled) VALUES (?, ?, ?, ?, ?, ?, ?)",
			rec.ID, i, rec.Date.Format(dateLayout), rec.Amount, rec.Payer, rec.Description, rec.Settled,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %q: %w", rec.ID, err)
		}
		for j, name := range rec.Beneficiaries {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO beneficiaries (transaction_id, position, name) VALUES (?, ?, ?)",
				rec.ID, j, name,
			)
			if err != nil {
				return fmt.Errorf("failed to insert beneficiary %q: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load reads the last saved snapshot. A database that has never been saved
// to returns storage.ErrNotFound.
func (s *SQLiteStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{}

	err := s.db.QueryRowContext(ctx, "SELECT version FROM meta WHERE id = 1").Scan(&snap.Version)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}

	if err := s.loadMembers(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadUsers(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadTransactions(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *SQLiteStore) loadMembers(ctx context.Context, snap *storage.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, balance FROM members ORDER BY position",
	)
	if err != nil {
		return fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m storage.MemberRecord
		if err := rows.Scan(&m.Name, &m.Balance); err != nil {
			return fmt.Errorf("failed to scan member: %w", err)
		}
		snap.Members = append(snap.Members, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate members: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadUsers(ctx context.Context, snap *storage.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT username, name, password_hash, admin, linked_member FROM users ORDER BY position",
	)
	if err != nil {
		return fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u storage.UserRecord
		if err := rows.Scan(&u.Username, &u.Name, &u.PasswordHash, &u.Admin, &u.LinkedMember); err != nil {
			return fmt.Errorf("failed to scan user: %w", err)
		}
		snap.Users = append(snap.Users, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate users: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadTransactions(ctx context.Context, snap *storage.Snapshot) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, amount, payer, description, settled FROM transactions ORDER BY position",
	)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec storage.TransactionRecord
		var rawDate string
		if err := rows.Scan(&rec.ID, &rawDate, &rec.Amount, &rec.Payer, &rec.Description, &rec.Settled); err != nil {
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		rec.Date, err = time.Parse(dateLayout, rawDate)
		if err != nil {
			return fmt.Errorf("failed to parse date %q: %w", rawDate, err)
		}
		snap.Transactions = append(snap.Transactions, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for i := range snap.Transactions {
		rec := &snap.Transactions[i]
		benRows, err := s.db.QueryContext(ctx,
			"SELECT name FROM beneficiaries WHERE transaction_id = ? ORDER BY position",
			rec.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to query beneficiaries: %w", err)
		}
		for benRows.Next() {
			var name string
			if err := benRows.Scan(&name); err != nil {
				benRows.Close()
				return fmt.Errorf("failed to scan beneficiary: %w", err)
			}
			rec.Beneficiaries = append(rec.Beneficiaries, name)
		}
		if err := benRows.Err(); err != nil {
			benRows.Close()
			return fmt.Errorf("failed to iterate beneficiaries: %w", err)
		}
		benRows.Close()
	}
	return nil
}
