package zktrie

import (
	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/util"
)

// BranchNode has two children referenced by hash. An empty child is the zero
// hash. The node type records the terminality of both children.
type BranchNode struct {
	BaseNode
	typ   NodeType
	left  util.Hash
	right util.Hash
}

var _ Node = (*BranchNode)(nil)

// NewBranchNode returns a branch node with the given children. typ must be
// one of the branch tags.
func NewBranchNode(s HashScheme, typ NodeType, left, right util.Hash) (*BranchNode, error) {
	if !typ.IsBranch() {
		panic("not a branch node type")
	}
	n := &BranchNode{typ: typ, left: left, right: right}
	if _, err := n.ComputeHash(s); err != nil {
		return nil, err
	}
	return n, nil
}

// branchType derives the branch tag from the terminality of both children.
func branchType(leftTerminal, rightTerminal bool) NodeType {
	switch {
	case leftTerminal && rightTerminal:
		return BranchLTRT
	case leftTerminal:
		return BranchLTRB
	case rightTerminal:
		return BranchLBRT
	default:
		return BranchLBRB
	}
}

// Type implements Node interface.
func (n *BranchNode) Type() NodeType { return n.typ }

// Hash implements Node interface.
func (n *BranchNode) Hash() util.Hash {
	return n.getHash()
}

// Bytes implements Node interface.
func (n *BranchNode) Bytes() []byte {
	return n.getBytes(n)
}

// Left returns the left child hash.
func (n *BranchNode) Left() util.Hash {
	return n.left
}

// Right returns the right child hash.
func (n *BranchNode) Right() util.Hash {
	return n.right
}

// LeftTerminal reports whether the left child is a leaf or an empty node.
func (n *BranchNode) LeftTerminal() bool {
	return n.typ == BranchLTRT || n.typ == BranchLTRB
}

// RightTerminal reports whether the right child is a leaf or an empty node.
func (n *BranchNode) RightTerminal() bool {
	return n.typ == BranchLTRT || n.typ == BranchLBRT
}

// ComputeHash implements Node interface.
func (n *BranchNode) ComputeHash(s HashScheme) (util.Hash, error) {
	h, err := s.Hash(n.left, n.right)
	if err != nil {
		return util.Hash{}, err
	}
	n.setHash(h)
	return h, nil
}

// EncodeBinary implements io.Serializable.
func (n *BranchNode) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(n.left[:])
	w.WriteBytes(n.right[:])
}

// DecodeBinary implements io.Serializable.
func (n *BranchNode) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(n.left[:])
	r.ReadBytes(n.right[:])
	n.invalidateCache()
}
