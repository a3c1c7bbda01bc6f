// Package solana adapts Solana account identities for use by the memo
// package. Only the identity format is implemented here; signing, blockhash
// retrieval and submission belong to a full Solana client.
package solana

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/mr-tron/base58"
)

// PublicKeyLength is the number of bytes in a Solana public key.
const PublicKeyLength = ed25519.PublicKeySize

// Set of errors returned when parsing a public key.
var (
	ErrInvalidEncoding = errors.New("public key is not base58 encoded")
	ErrInvalidLength   = errors.New("public key has the wrong length")
)

// MemoProgram is the public key of the memo program.
var MemoProgram = MustPublicKey(memo.ProgramID)

// =============================================================================

// PublicKey represents a Solana account address.
type PublicKey [PublicKeyLength]byte

// ToPublicKey converts a base58 encoded string to a public key and validates
// the string is formatted correctly.
func ToPublicKey(s string) (PublicKey, error) {
	if s == "" {
		return PublicKey{}, ErrInvalidEncoding
	}

	b, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
	}

	if len(b) != PublicKeyLength {
		return PublicKey{}, fmt.Errorf("%w: got %d bytes, exp %d", ErrInvalidLength, len(b), PublicKeyLength)
	}

	var pk PublicKey
	copy(pk[:], b)

	return pk, nil
}

// MustPublicKey converts the string to a public key and panics if the
// string is not a valid public key. Use it for compiled in addresses.
func MustPublicKey(s string) PublicKey {
	pk, err := ToPublicKey(s)
	if err != nil {
		panic(err)
	}

	return pk
}

// String implements the fmt.Stringer interface.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// MarshalText implements the encoding.TextMarshaler interface.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	v, err := ToPublicKey(string(text))
	if err != nil {
		return err
	}

	*pk = v
	return nil
}

// =============================================================================

// Ledger implements the memo.Ledger interface for Solana.
type Ledger struct{}

// ParseIdentity converts the base58 encoded address into a public key.
func (Ledger) ParseIdentity(s string) (memo.Identity, error) {
	pk, err := ToPublicKey(s)
	if err != nil {
		return nil, err
	}

	return pk, nil
}
