package memogrp

import (
	"fmt"

	"github.com/ardanlabs/memochain/business/sys/validate"
	"github.com/ardanlabs/memochain/foundation/blockchain/memo"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Set of encodings the data in a request can use.
const (
	encodingText = "text"
	encodingHex  = "hex"
)

// NewInstruction is what we require from clients to build a memo instruction.
type NewInstruction struct {
	Data     string `json:"data" validate:"max=1048576"`
	Encoding string `json:"encoding" validate:"omitempty,oneof=text hex"`
}

// Validate checks the data in the model is considered clean.
func (ni NewInstruction) Validate() error {
	return validate.Check(ni)
}

// NewPlan is what we require from clients to build an upload plan.
type NewPlan struct {
	Payer    string `json:"payer" validate:"required"`
	Data     string `json:"data" validate:"max=1048576"`
	Encoding string `json:"encoding" validate:"omitempty,oneof=text hex"`
}

// Validate checks the data in the model is considered clean.
func (np NewPlan) Validate() error {
	return validate.Check(np)
}

// decodeData returns the bytes the client wants committed. Hex data must be
// 0x prefixed.
func decodeData(data string, encoding string) ([]byte, error) {
	if encoding != encodingHex {
		return []byte(data), nil
	}

	b, err := hexutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("data is not valid hex: %w", err)
	}

	return b, nil
}

// =============================================================================

// AccountMeta represents an account referenced by an instruction.
type AccountMeta struct {
	PublicKey  string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// Instruction represents a memo instruction.
type Instruction struct {
	ProgramID string        `json:"program_id"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      hexutil.Bytes `json:"data"`
	Memo      string        `json:"memo"`
}

// InstructionResult is returned when an instruction is built.
type InstructionResult struct {
	DataHash    string      `json:"data_hash"`
	Instruction Instruction `json:"instruction"`
}

// Transaction represents an unsigned transaction.
type Transaction struct {
	FeePayer     string        `json:"fee_payer"`
	Instructions []Instruction `json:"instructions"`
	Signed       bool          `json:"signed"`
}

// Plan represents an upload plan.
type Plan struct {
	DataHash    string      `json:"data_hash"`
	Payer       string      `json:"payer"`
	Transaction Transaction `json:"transaction"`
}

func toInstruction(ix memo.Instruction) Instruction {
	accounts := make([]AccountMeta, len(ix.Accounts))
	for i, acct := range ix.Accounts {
		accounts[i] = AccountMeta{
			PublicKey:  acct.Identity.String(),
			IsSigner:   acct.IsSigner,
			IsWritable: acct.IsWritable,
		}
	}

	return Instruction{
		ProgramID: ix.ProgramID,
		Accounts:  accounts,
		Data:      hexutil.Bytes(ix.Data),
		Memo:      ix.Memo(),
	}
}

func toPlan(p memo.UploadPlan) Plan {
	ixs := make([]Instruction, len(p.Transaction.Instructions))
	for i, ix := range p.Transaction.Instructions {
		ixs[i] = toInstruction(ix)
	}

	return Plan{
		DataHash: p.DataHash,
		Payer:    p.Payer.String(),
		Transaction: Transaction{
			FeePayer:     p.Transaction.FeePayer.String(),
			Instructions: ixs,
		},
	}
}
