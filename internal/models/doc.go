// Package models defines the core domain types for wg-abrechner.
//
// The household is a fixed set of members. Each Member owns exactly one
// Account, created together with it. Expenses are recorded as immutable
// Transaction values and collected by the ledger engine, which derives
// per-member balances from the transaction history.
//
// Two balance notions exist side by side: the ledger-derived balance and
// the running total stored on an Account. They are independent and never
// reconciled automatically; the Account balance is a separately maintained
// cache that collaborators may update directly.
//
// User carries login credentials. It never computes password hashes itself;
// callers hash the password (see package auth) and the User only compares
// hash strings. Member and a User with a linked account both satisfy
// AccountHolder, the capability consumed by the login flow and the debt
// rules.
package models
