// Package hasher provides the single hashing function shared by the chain
// and the memo builder so a digest stored locally and a digest committed
// on-chain are identical for the same bytes.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Length is the number of hex characters in a digest.
const Length = sha256.Size * 2

// Digest returns the lowercase hex encoded SHA-256 hash of the data.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// IsDigest reports whether s has the shape of a value returned by Digest.
func IsDigest(s string) bool {
	if len(s) != Length {
		return false
	}

	for _, c := range []byte(s) {
		if !('0' <= c && c <= '9') && !('a' <= c && c <= 'f') {
			return false
		}
	}

	return true
}
