package chaingrp

import (
	"github.com/ardanlabs/memochain/business/sys/validate"
	"github.com/ardanlabs/memochain/foundation/blockchain/chain"
)

// Block represents a block in the chain.
type Block struct {
	Index    uint64 `json:"index"`
	Data     string `json:"data"`
	PrevHash string `json:"prev_hash"`
	Hash     string `json:"hash"`
}

func toBlock(b chain.Block) Block {
	return Block{
		Index:    b.Index(),
		Data:     b.Data(),
		PrevHash: b.PrevHash(),
		Hash:     b.Hash(),
	}
}

func toBlocks(blocks []chain.Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = toBlock(b)
	}
	return out
}

// NewBlock is what we require from clients to append data to the chain.
type NewBlock struct {
	Data string `json:"data" validate:"max=1048576"`
}

// Validate checks the data in the model is considered clean.
func (nb NewBlock) Validate() error {
	return validate.Check(nb)
}

// Status represents the result of verifying the chain.
type Status struct {
	Valid  bool   `json:"valid"`
	Blocks int    `json:"blocks"`
	Latest string `json:"latest,omitempty"`
	Error  string `json:"error,omitempty"`
}
