package chain

import (
	"fmt"

	"github.com/ardanlabs/memochain/foundation/blockchain/hasher"
)

// GenesisHash is the previous hash recorded by the first block in a chain.
const GenesisHash = "GENESIS"

// Block represents a single entry of data recorded in the chain. The fields
// are only readable through methods so a block can't be changed once it has
// been constructed.
type Block struct {
	index    uint64
	data     string
	prevHash string
	hash     string
}

// newBlock constructs the block that follows the specified previous hash.
func newBlock(index uint64, data string, prevHash string) Block {
	return Block{
		index:    index,
		data:     data,
		prevHash: prevHash,
		hash:     ComputeHash(index, data, prevHash),
	}
}

// Index returns the position of the block in the chain starting at 0.
func (b Block) Index() uint64 {
	return b.index
}

// Data returns the data recorded by the block.
func (b Block) Data() string {
	return b.data
}

// PrevHash returns the hash of the parent block or GenesisHash.
func (b Block) PrevHash() string {
	return b.prevHash
}

// Hash returns the unique hash for the block.
func (b Block) Hash() string {
	return b.hash
}

// IsGenesis reports whether this is the first block of a chain.
func (b Block) IsGenesis() bool {
	return b.prevHash == GenesisHash
}

// IsValid recomputes the hash from the block's fields and checks it against
// the recorded hash.
func (b Block) IsValid() bool {
	return b.hash == ComputeHash(b.index, b.data, b.prevHash)
}

// String implements the fmt.Stringer interface for logging.
func (b Block) String() string {
	return fmt.Sprintf("%d:%s", b.index, b.hash)
}

// =============================================================================

// ComputeHash produces the hash identifying a block with these fields.
//
// NOTE: The fields are joined with a "|" separator. Data containing the
// separator can produce the same input as a different set of fields, so this
// scheme is fine for demonstration and local bookkeeping but must not be used
// where consensus depends on it.
func ComputeHash(index uint64, data string, prevHash string) string {
	payload := fmt.Sprintf("%d|%s|%s", index, data, prevHash)
	return hasher.Digest([]byte(payload))
}
