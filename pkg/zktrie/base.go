package zktrie

import (
	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/util"
)

// BaseNode implements basic things every node needs like caching hash and
// serialized representation. It's a basic node building block intended to be
// included into all node types.
type BaseNode struct {
	hash       util.Hash
	bytes      []byte
	hashValid  bool
	bytesValid bool

	isFlushed bool
}

// getHash returns the cached hash of this BaseNode.
func (b *BaseNode) getHash() util.Hash {
	if !b.hashValid {
		panic("node hash is not calculated")
	}
	return b.hash
}

// setHash caches the node hash.
func (b *BaseNode) setHash(h util.Hash) {
	b.hash = h
	b.hashValid = true
}

// getBytes returns a slice of bytes representing this node.
func (b *BaseNode) getBytes(n Node) []byte {
	if !b.bytesValid {
		buf := io.NewBufBinWriter()
		encodeNodeWithType(n, buf.BinWriter)
		b.bytes = buf.Bytes()
		b.bytesValid = true
	}
	return b.bytes
}

// invalidateCache sets all cache fields to invalid state.
func (b *BaseNode) invalidateCache() {
	b.bytesValid = false
	b.hashValid = false
	b.isFlushed = false
}

// IsFlushed checks for node flush status.
func (b *BaseNode) IsFlushed() bool {
	return b.isFlushed
}

// SetFlushed sets 'flushed' flag to true for this node.
func (b *BaseNode) SetFlushed() {
	b.isFlushed = true
}
