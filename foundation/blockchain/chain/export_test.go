package chain

// NewTestBlock constructs a block with every field specified so tests can
// build tampered chains.
func NewTestBlock(index uint64, data string, prevHash string, hash string) Block {
	return Block{
		index:    index,
		data:     data,
		prevHash: prevHash,
		hash:     hash,
	}
}
