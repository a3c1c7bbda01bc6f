// Package memo builds unsigned ledger transactions that commit the hash of
// some data through a memo instruction. Nothing in this package signs or
// submits a transaction; the plans it produces are handed to whatever client
// and key management the caller prefers.
package memo

import (
	"github.com/ardanlabs/memochain/foundation/blockchain/hasher"
)

// ProgramID is the address of the memo (v2) program on the Solana mainnet,
// devnet and testnet clusters.
const ProgramID = "MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"

// Identity represents an account identity on the ledger. Implementations
// must be comparable values.
type Identity interface {
	String() string
}

// Ledger represents the behavior required from a ledger SDK to validate
// account identities.
type Ledger interface {
	ParseIdentity(s string) (Identity, error)
}

// =============================================================================

// AccountMeta describes an account referenced by an instruction.
type AccountMeta struct {
	Identity   Identity
	IsSigner   bool
	IsWritable bool
}

// Instruction represents a single call into a ledger program.
type Instruction struct {
	ProgramID string
	Accounts  []AccountMeta
	Data      []byte
}

// Memo returns the instruction data as text.
func (ix Instruction) Memo() string {
	return string(ix.Data)
}

// BuildInstruction hashes the data and constructs a memo instruction that
// carries the hex digest as its payload. The memo program doesn't require
// any accounts.
func BuildInstruction(data []byte) (string, Instruction) {
	hash := hasher.Digest(data)

	ix := Instruction{
		ProgramID: ProgramID,
		Accounts:  []AccountMeta{},
		Data:      []byte(hash),
	}

	return hash, ix
}
