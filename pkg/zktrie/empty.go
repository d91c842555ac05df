package zktrie

import (
	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/util"
)

// EmptyNode represents an empty subtree. Its hash is the field zero and it
// is materialized on demand, a backend never stores one.
type EmptyNode struct{}

var _ Node = EmptyNode{}

// Type implements Node interface.
func (e EmptyNode) Type() NodeType {
	return EmptyT
}

// Hash implements Node interface.
func (e EmptyNode) Hash() util.Hash {
	return util.Hash{}
}

// ComputeHash implements Node interface.
func (e EmptyNode) ComputeHash(HashScheme) (util.Hash, error) {
	return util.Hash{}, nil
}

// Bytes implements Node interface.
func (e EmptyNode) Bytes() []byte {
	return []byte{byte(EmptyT)}
}

// EncodeBinary implements io.Serializable interface.
func (e EmptyNode) EncodeBinary(*io.BinWriter) {
}

// DecodeBinary implements io.Serializable interface.
func (e EmptyNode) DecodeBinary(*io.BinReader) {
}

// IsFlushed implements Node interface.
func (e EmptyNode) IsFlushed() bool {
	return true
}

// SetFlushed implements Node interface.
func (e EmptyNode) SetFlushed() {
}
