package memo

import (
	"bytes"
	"errors"
	"fmt"
)

// Transaction is an unsigned transaction skeleton. A signer is expected to
// add a recent blockhash and signatures before submitting it.
type Transaction struct {
	FeePayer     Identity
	Instructions []Instruction
}

// UploadPlan describes what would be sent on-chain to commit the hash of
// some data.
type UploadPlan struct {
	DataHash    string
	Payer       Identity
	Transaction Transaction
}

// NewPlan constructs the upload plan for the data with the specified payer
// covering the transaction fees.
func NewPlan(payer Identity, data []byte) UploadPlan {
	hash, ix := BuildInstruction(data)

	tx := Transaction{
		FeePayer:     payer,
		Instructions: []Instruction{ix},
	}

	return UploadPlan{
		DataHash:    hash,
		Payer:       payer,
		Transaction: tx,
	}
}

// Validate checks the transaction in the plan commits the plan's data hash
// with the plan's payer. Signers can use this before signing a plan that
// was received from somewhere else.
func (p UploadPlan) Validate() error {
	if p.Payer == nil {
		return errors.New("plan has no payer")
	}

	if p.Transaction.FeePayer != p.Payer {
		return fmt.Errorf("fee payer doesn't match the payer, got %v, exp %v", p.Transaction.FeePayer, p.Payer)
	}

	if n := len(p.Transaction.Instructions); n != 1 {
		return fmt.Errorf("transaction must have exactly one instruction, got %d", n)
	}

	ix := p.Transaction.Instructions[0]

	if ix.ProgramID != ProgramID {
		return fmt.Errorf("instruction is not addressed to the memo program, got %s, exp %s", ix.ProgramID, ProgramID)
	}

	if len(ix.Accounts) != 0 {
		return fmt.Errorf("memo instruction must not reference accounts, got %d", len(ix.Accounts))
	}

	if !bytes.Equal(ix.Data, []byte(p.DataHash)) {
		return fmt.Errorf("memo doesn't match the data hash, got %s, exp %s", ix.Memo(), p.DataHash)
	}

	return nil
}

// =============================================================================

// Builder constructs upload plans for payers provided in the ledger's
// textual identity format.
type Builder struct {
	ledger Ledger
}

// NewBuilder constructs a builder that validates payers with the ledger.
func NewBuilder(ledger Ledger) *Builder {
	return &Builder{
		ledger: ledger,
	}
}

// BuildPlan parses the payer and constructs the upload plan for the data.
// An error is returned only when the ledger rejects the payer, and it will
// be of type *IdentityError.
func (b *Builder) BuildPlan(payer string, data []byte) (UploadPlan, error) {
	identity, err := b.ledger.ParseIdentity(payer)
	if err != nil {
		return UploadPlan{}, &IdentityError{Identity: payer, Err: err}
	}

	return NewPlan(identity, data), nil
}
