// Package auth computes password hashes for the login flow.
//
// The domain model never hashes anything itself: User.VerifyPassword only
// compares hash strings. Callers hash the entered password with
// HashPassword before handing it to the login manager, and store the same
// form at registration time.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the UTF-8 bytes of
// password. Deterministic, so equal passwords always produce equal hashes.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
