// Package chain maintains an in memory, append only chain of data blocks
// where every block is bound to its parent by hash.
package chain

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIntegrity is returned when a sequence of blocks doesn't form a valid chain.
var ErrIntegrity = errors.New("chain integrity check failed")

// EventHandler defines a function that is called when events occur in the
// processing of the chain.
type EventHandler func(v string, args ...any)

// =============================================================================

// Chain manages the ordered set of blocks and an index of blocks by hash.
// Appends are serialized, reads can happen concurrently.
type Chain struct {
	mu        sync.RWMutex
	blocks    []Block
	byHash    map[string]Block
	evHandler EventHandler
}

// New constructs an empty chain. The event handler is optional.
func New(evHandler EventHandler) *Chain {
	ev := func(v string, args ...any) {
		if evHandler != nil {
			evHandler(v, args...)
		}
	}

	return &Chain{
		byHash:    make(map[string]Block),
		evHandler: ev,
	}
}

// Upload constructs a new chain holding a single block with the data.
func Upload(data string) *Chain {
	ch := New(nil)
	ch.Append(data)

	return ch
}

// Append records the data in a new block bound to the current tip of the
// chain and returns that block. The event handler is called after the lock
// is released so it can read from the chain.
func (ch *Chain) Append(data string) Block {
	block := ch.appendBlock(data)

	ch.evHandler("chain: Append: blk[%d]: prevBlk[%s]: newBlk[%s]", block.index, block.prevHash, block.hash)

	return block
}

func (ch *Chain) appendBlock(data string) Block {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	prevHash := GenesisHash
	if l := len(ch.blocks); l > 0 {
		prevHash = ch.blocks[l-1].hash
	}

	block := newBlock(uint64(len(ch.blocks)), data, prevHash)

	ch.blocks = append(ch.blocks, block)
	ch.byHash[block.hash] = block

	return block
}

// Get returns the block recorded with the specified hash. The bool is false
// when no such block exists.
func (ch *Chain) Get(hash string) (Block, bool) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	block, exists := ch.byHash[hash]
	return block, exists
}

// Snapshot returns a copy of the blocks in the chain in order.
func (ch *Chain) Snapshot() []Block {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	blocks := make([]Block, len(ch.blocks))
	copy(blocks, ch.blocks)

	return blocks
}

// Len returns the number of blocks in the chain.
func (ch *Chain) Len() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return len(ch.blocks)
}

// Latest returns the block at the tip of the chain. The bool is false when
// the chain is empty.
func (ch *Chain) Latest() (Block, bool) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.blocks) == 0 {
		return Block{}, false
	}

	return ch.blocks[len(ch.blocks)-1], true
}

// Verify walks a snapshot of the chain from genesis to tip and validates
// every block, reporting progress through the event handler.
func (ch *Chain) Verify() error {
	blocks := ch.Snapshot()

	ch.evHandler("chain: Verify: started: blocks[%d]", len(blocks))

	if err := ValidateBlocks(blocks); err != nil {
		ch.evHandler("chain: Verify: FAILED: %s", err)
		return err
	}

	ch.evHandler("chain: Verify: completed")

	return nil
}

// =============================================================================

// ValidateBlocks checks the blocks form a gap free sequence starting at
// index 0, that every block links to its parent and that every hash matches
// the block's fields.
func ValidateBlocks(blocks []Block) error {
	prevHash := GenesisHash

	for i, block := range blocks {
		if block.index != uint64(i) {
			return fmt.Errorf("%w: blk[%d]: index is out of order, got %d, exp %d", ErrIntegrity, i, block.index, i)
		}

		if block.prevHash != prevHash {
			return fmt.Errorf("%w: blk[%d]: parent hash doesn't match, got %s, exp %s", ErrIntegrity, i, block.prevHash, prevHash)
		}

		if !block.IsValid() {
			return fmt.Errorf("%w: blk[%d]: block hash has been changed, got %s, exp %s", ErrIntegrity, i, block.hash, ComputeHash(block.index, block.data, block.prevHash))
		}

		prevHash = block.hash
	}

	return nil
}
