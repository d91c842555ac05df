package zktrie

import (
	"fmt"

	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/util"
)

// MaxValueSlots is the max number of 32-byte value slots a leaf can hold,
// bounded by the slot counter sharing a u32 with the compression flag.
const MaxValueSlots = 255

// LeafNode is a terminal node holding a value. It stores the entire secure
// key regardless of the depth it sits at, so that a leaf parked above the
// maximum depth remains unambiguous.
type LeafNode struct {
	BaseNode
	key       util.Hash
	values    []util.Byte32
	flag      uint32
	valueHash util.Hash
	// keyPreimage optionally keeps the raw key the secure key was derived
	// from. It is not part of the node hash.
	keyPreimage *util.Byte32
}

var _ Node = (*LeafNode)(nil)

// NewLeafNode returns a leaf node with the given secure key and value slots.
func NewLeafNode(s HashScheme, key util.Hash, values []util.Byte32, flag uint32) (*LeafNode, error) {
	n := &LeafNode{key: key, values: values, flag: flag}
	if _, err := n.ComputeHash(s); err != nil {
		return nil, err
	}
	return n, nil
}

// Type implements Node interface.
func (n *LeafNode) Type() NodeType { return LeafT }

// Hash implements Node interface.
func (n *LeafNode) Hash() util.Hash {
	return n.getHash()
}

// Bytes implements Node interface.
func (n *LeafNode) Bytes() []byte {
	return n.getBytes(n)
}

// Key returns the secure key stored in the leaf.
func (n *LeafNode) Key() util.Hash {
	return n.key
}

// Values returns the value slots stored in the leaf.
func (n *LeafNode) Values() []util.Byte32 {
	return n.values
}

// Flag returns the compression flag of the value slots.
func (n *LeafNode) Flag() uint32 {
	return n.flag
}

// ValueHash returns the field element committing to the leaf value.
func (n *LeafNode) ValueHash() util.Hash {
	return n.valueHash
}

// KeyPreimage returns the raw key the secure key was derived from, if kept.
func (n *LeafNode) KeyPreimage() *util.Byte32 {
	return n.keyPreimage
}

// SetKeyPreimage attaches the raw key preimage to the leaf.
func (n *LeafNode) SetKeyPreimage(p util.Byte32) {
	n.keyPreimage = &p
	n.bytesValid = false
}

// ComputeHash implements Node interface. The leaf hash interposes the
// domain-separated key commitment: h(h(domainLeaf, key), valueHash).
func (n *LeafNode) ComputeHash(s HashScheme) (util.Hash, error) {
	vh, err := HashValues(s, n.values, n.flag)
	if err != nil {
		return util.Hash{}, err
	}
	km, err := s.Hash(s.DomainLeaf(), n.key)
	if err != nil {
		return util.Hash{}, err
	}
	h, err := s.Hash(km, vh)
	if err != nil {
		return util.Hash{}, err
	}
	n.valueHash = vh
	n.setHash(h)
	return h, nil
}

// EncodeBinary implements io.Serializable.
func (n *LeafNode) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(n.key[:])
	w.WriteU32LE(n.flag<<8 | uint32(len(n.values)))
	for i := range n.values {
		w.WriteBytes(n.values[i][:])
	}
	if n.keyPreimage != nil {
		w.WriteB(32)
		w.WriteBytes(n.keyPreimage[:])
	} else {
		w.WriteB(0)
	}
}

// DecodeBinary implements io.Serializable.
func (n *LeafNode) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(n.key[:])
	mark := r.ReadU32LE()
	count := int(mark & 0xff)
	if r.Err == nil && count == 0 {
		r.Err = fmt.Errorf("leaf node without value slots")
		return
	}
	n.flag = mark >> 8
	n.values = make([]util.Byte32, count)
	for i := 0; i < count; i++ {
		r.ReadBytes(n.values[i][:])
	}
	switch sz := r.ReadB(); sz {
	case 0:
		n.keyPreimage = nil
	case 32:
		var p util.Byte32
		r.ReadBytes(p[:])
		n.keyPreimage = &p
	default:
		if r.Err == nil {
			r.Err = fmt.Errorf("invalid key preimage size: %d", sz)
		}
	}
	n.invalidateCache()
}
