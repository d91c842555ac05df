package zktrie

import "github.com/zkrollup/zktrie/pkg/util"

// Proof is a Merkle path from the root down to a terminal node.
type Proof struct {
	// NodeKey is the secure key the proof was built for.
	NodeKey util.Hash
	// Siblings holds the hash of the untaken child at every branch on the
	// path, ordered from the root down.
	Siblings []util.Hash
	// Terminal is the node the traversal ended at: a leaf for inclusion
	// (or a different leaf occupying the slot), an empty node for absence.
	Terminal Node
}

// Prove constructs a Merkle proof for the given raw key. If the trie does
// not contain the key, the proof ends with the node witnessing its absence.
func (t *Trie) Prove(key []byte) (*Proof, error) {
	nk, err := t.keys.HashKey(key)
	if err != nil {
		return nil, err
	}
	p := &Proof{NodeKey: nk}
	next := t.root
	for depth := 0; depth <= MaxLevels; depth++ {
		n, err := t.getNode(next)
		if err != nil {
			return nil, err
		}
		switch n := n.(type) {
		case EmptyNode, *LeafNode:
			p.Terminal = n
			return p, nil
		case *BranchNode:
			if depth == MaxLevels {
				return nil, ErrDepthExceeded
			}
			if getPath(nk, depth) {
				p.Siblings = append(p.Siblings, n.Left())
				next = n.Right()
			} else {
				p.Siblings = append(p.Siblings, n.Right())
				next = n.Left()
			}
		}
	}
	return nil, ErrDepthExceeded
}

// Includes reports whether the proof shows the key present in the trie.
func (p *Proof) Includes() bool {
	l, ok := p.Terminal.(*LeafNode)
	return ok && sameSlot(l.Key(), p.NodeKey)
}

// VerifyProof rehashes the path of p from the terminal node outward and
// compares the result against the advertised root.
func VerifyProof(s HashScheme, root util.Hash, p *Proof) bool {
	if p.Terminal == nil {
		return false
	}
	cur, err := p.Terminal.ComputeHash(s)
	if err != nil {
		return false
	}
	for i := len(p.Siblings) - 1; i >= 0; i-- {
		if getPath(p.NodeKey, i) {
			cur, err = s.Hash(p.Siblings[i], cur)
		} else {
			cur, err = s.Hash(cur, p.Siblings[i])
		}
		if err != nil {
			return false
		}
	}
	return cur.Equals(root)
}
