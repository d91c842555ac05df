package zktrie

import (
	"fmt"

	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/util"
)

// NodeType represents node type. Branch nodes carry the terminality of both
// children in the tag so that deletion can classify a sibling without
// re-reading it from the backend. Terminal means leaf or empty.
type NodeType byte

// Node types definitions.
const (
	LeafT  NodeType = 4
	EmptyT NodeType = 5
	// BranchLTRT is a branch node with both children terminal.
	BranchLTRT NodeType = 6
	// BranchLTRB is a branch node with a terminal left child and a branch
	// right child.
	BranchLTRB NodeType = 7
	// BranchLBRT is a branch node with a branch left child and a terminal
	// right child.
	BranchLBRT NodeType = 8
	// BranchLBRB is a branch node with both children being branch nodes.
	BranchLBRB NodeType = 9
)

// IsBranch returns whether t is one of the branch tags.
func (t NodeType) IsBranch() bool {
	return t >= BranchLTRT && t <= BranchLBRB
}

// Node represents common interface of all trie nodes.
type Node interface {
	io.Serializable
	Type() NodeType
	// Hash returns the cached node hash. It panics if the hash has not
	// been computed yet, use ComputeHash first on decoded nodes.
	Hash() util.Hash
	// Bytes returns the serialized node prefixed with its type tag, the
	// payload stored in the backend under the node hash.
	Bytes() []byte
	// ComputeHash recalculates the node hash from the node contents and
	// caches it.
	ComputeHash(s HashScheme) (util.Hash, error)
	IsFlushed() bool
	SetFlushed()
}

// DecodeNode decodes a node together with its type from r.
func DecodeNode(r *io.BinReader) Node {
	var n Node
	switch typ := NodeType(r.ReadB()); typ {
	case LeafT:
		n = new(LeafNode)
	case EmptyT:
		n = EmptyNode{}
	case BranchLTRT, BranchLTRB, BranchLBRT, BranchLBRB:
		n = &BranchNode{typ: typ}
	default:
		if r.Err == nil {
			r.Err = fmt.Errorf("invalid node type: %x", byte(typ))
		}
		return nil
	}
	n.DecodeBinary(r)
	return n
}

// encodeNodeWithType encodes node together with its type.
func encodeNodeWithType(n Node, w *io.BinWriter) {
	w.WriteB(byte(n.Type()))
	n.EncodeBinary(w)
}
