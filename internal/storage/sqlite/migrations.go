package sqlite

import "database/sql"

// schema sets up the snapshot tables. Position columns preserve the
// insertion order of the in-memory state; beneficiaries keep per-transaction
// order and may repeat a name.
const schema = `
CREATE TABLE IF NOT EXISTS meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    version INTEGER NOT NULL,
    saved_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    balance REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    admin INTEGER NOT NULL DEFAULT 0,
    linked_member TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    date TEXT NOT NULL,
    amount REAL NOT NULL,
    payer TEXT NOT NULL,
    description TEXT NOT NULL,
    settled INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS beneficiaries (
    transaction_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (transaction_id, position),
    FOREIGN KEY (transaction_id) REFERENCES transactions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_transactions_position ON transactions(position);
CREATE INDEX IF NOT EXISTS idx_beneficiaries_transaction_id ON beneficiaries(transaction_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
