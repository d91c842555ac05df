/*
Package zktrie implements a sparse binary Merkle Patricia trie suitable for
zero-knowledge proving systems. Keys are hashed into field elements and
traversed bit by bit, LSB first; values are lists of 32-byte slots committed
through a compression-flag driven hash tree. Nodes are content-addressed by
their hash and persisted lazily: mutations build new subtrees in memory and
Commit writes them out child-before-parent, which keeps the backend free of
dangling references and makes commits idempotent.
*/
package zktrie

import (
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkrollup/zktrie/pkg/io"
	"github.com/zkrollup/zktrie/pkg/storage"
	"github.com/zkrollup/zktrie/pkg/util"
)

// MaxLevels is the maximum trie depth. Secure keys are outputs of a hash
// over a ~254-bit prime field, so the key space does not fully occupy a
// power of two. Truncating the path to the low 248 bits removes the
// ambiguous bit representation of a key in the finite field.
const MaxLevels = 248

// Config is a set of options for a Trie.
type Config struct {
	// Store is the KV backend nodes are loaded from and committed to.
	Store storage.Store
	// Scheme is the hash scheme producing node and value commitments.
	Scheme HashScheme
	// KeyHasher derives secure keys from raw keys.
	KeyHasher KeyHasher
	// Root is the node hash to resume from, zero means an empty trie.
	// A non-zero root must be resolvable through Store.
	Root util.Hash
	// Logger is used for internal event logging, defaults to no-op.
	Logger *zap.Logger
	// SilentDelete makes Delete of a missing key a no-op instead of
	// returning ErrNotFound.
	SilentDelete bool
	// StorePreimages makes Update keep the raw key preimage inside the
	// leaf so that it ends up in the backend on commit.
	StorePreimages bool
}

// Trie is a sparse binary Merkle Patricia trie mapping secure keys to value
// slot lists. A Trie instance is owned by a single caller, operations are
// strictly sequenced. Mutations stay in the in-memory working set until
// Commit.
type Trie struct {
	store          storage.Store
	scheme         HashScheme
	keys           KeyHasher
	log            *zap.Logger
	silentDelete   bool
	storePreimages bool

	root util.Hash
	// nodes is the working set of every node touched since creation,
	// keyed by node hash.
	nodes map[util.Hash]Node
	// dirty marks working set entries not yet written to the backend.
	dirty map[util.Hash]bool
	// changed tracks whether the trie has uncommitted modifications.
	changed bool
}

// New returns a trie over the given backend. With a zero cfg.Root the trie
// starts empty, otherwise the root node is resolved eagerly so that a
// dangling root fails construction instead of the first operation.
func New(cfg Config) (*Trie, error) {
	switch {
	case cfg.Store == nil:
		return nil, errors.New("nil Store")
	case cfg.Scheme == nil:
		return nil, errors.New("nil Scheme")
	case cfg.KeyHasher == nil:
		return nil, errors.New("nil KeyHasher")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	t := &Trie{
		store:          cfg.Store,
		scheme:         cfg.Scheme,
		keys:           cfg.KeyHasher,
		log:            log,
		silentDelete:   cfg.SilentDelete,
		storePreimages: cfg.StorePreimages,
		root:           cfg.Root,
		nodes:          make(map[util.Hash]Node),
		dirty:          make(map[util.Hash]bool),
	}
	if !t.root.IsZero() {
		if _, err := t.getNode(t.root); err != nil {
			return nil, fmt.Errorf("resolving root: %w", err)
		}
	}
	return t, nil
}

// Root returns the current root hash. It never touches the backend; an
// empty trie has the zero root.
func (t *Trie) Root() util.Hash {
	return t.root
}

// IsDirty reports whether the trie has uncommitted modifications.
func (t *Trie) IsDirty() bool {
	return t.changed
}

// Get returns the value slots stored under the given raw key.
func (t *Trie) Get(key []byte) ([]util.Byte32, error) {
	nk, err := t.keys.HashKey(key)
	if err != nil {
		return nil, err
	}
	leaf, err := t.getLeaf(nk)
	if err != nil {
		return nil, err
	}
	return leaf.Values(), nil
}

// GetLeaf returns the leaf node stored under the given raw key.
func (t *Trie) GetLeaf(key []byte) (*LeafNode, error) {
	nk, err := t.keys.HashKey(key)
	if err != nil {
		return nil, err
	}
	return t.getLeaf(nk)
}

// Update stores the value slots under the given raw key, replacing any
// previous value. The flag marks slots that are not valid field elements.
func (t *Trie) Update(key []byte, values []util.Byte32, flag uint32) error {
	nk, err := t.keys.HashKey(key)
	if err != nil {
		return err
	}
	leaf, err := NewLeafNode(t.scheme, nk, values, flag)
	if err != nil {
		return err
	}
	if t.storePreimages && len(key) <= util.HashSize {
		leaf.SetKeyPreimage(util.NewByte32FromBytes(key))
	}
	newRoot, _, err := t.addLeaf(leaf, t.root, 0)
	if err != nil {
		return err
	}
	t.root = newRoot
	t.changed = true
	return nil
}

// Delete removes the given raw key from the trie. A missing key yields
// ErrNotFound unless the trie was configured with SilentDelete.
func (t *Trie) Delete(key []byte) error {
	nk, err := t.keys.HashKey(key)
	if err != nil {
		return err
	}
	newRoot, _, err := t.deleteNode(t.root, nk, 0)
	if err != nil {
		if errors.Is(err, ErrNotFound) && t.silentDelete {
			t.log.Debug("delete of a missing key",
				zap.String("key", hex.EncodeToString(key)))
			return nil
		}
		return err
	}
	t.root = newRoot
	t.changed = true
	return nil
}

// Commit writes every dirty node reachable from the root to the backend,
// children before parents, and resets the dirty state. Commit on a clean
// trie is a no-op. Node records are content-addressed, so a partially
// failed commit leaves no dangling references and a retry completes it.
func (t *Trie) Commit() error {
	if !t.changed {
		return nil
	}
	if err := t.flush(t.root); err != nil {
		return err
	}
	t.dirty = make(map[util.Hash]bool)
	t.changed = false
	t.log.Debug("trie committed", zap.Stringer("root", t.root))
	return nil
}

func (t *Trie) flush(h util.Hash) error {
	if h.IsZero() || !t.dirty[h] {
		return nil
	}
	n := t.nodes[h]
	if b, ok := n.(*BranchNode); ok {
		if err := t.flush(b.Left()); err != nil {
			return err
		}
		if err := t.flush(b.Right()); err != nil {
			return err
		}
	}
	if err := t.store.Put(h.Bytes(), n.Bytes()); err != nil {
		return fmt.Errorf("backend put: %w", err)
	}
	n.SetFlushed()
	return nil
}

// getLeaf walks the bit path of nodeKey down to a terminal node.
func (t *Trie) getLeaf(nodeKey util.Hash) (*LeafNode, error) {
	next := t.root
	for depth := 0; depth <= MaxLevels; depth++ {
		n, err := t.getNode(next)
		if err != nil {
			return nil, err
		}
		switch n := n.(type) {
		case EmptyNode:
			return nil, ErrNotFound
		case *LeafNode:
			if sameSlot(n.Key(), nodeKey) {
				return n, nil
			}
			return nil, ErrNotFound
		case *BranchNode:
			if depth == MaxLevels {
				return nil, ErrDepthExceeded
			}
			if getPath(nodeKey, depth) {
				next = n.Right()
			} else {
				next = n.Left()
			}
		}
	}
	return nil, ErrDepthExceeded
}

// getNode loads the node with the given hash from the working set or the
// backend, verifying that the payload hashes back to the key it was stored
// under.
func (t *Trie) getNode(h util.Hash) (Node, error) {
	if h.IsZero() {
		return EmptyNode{}, nil
	}
	if n, ok := t.nodes[h]; ok {
		return n, nil
	}
	data, err := t.store.Get(h.Bytes())
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, fmt.Errorf("node %s: %w", h, ErrNodeNotFound)
		}
		return nil, fmt.Errorf("backend get: %w", err)
	}
	r := io.NewBinReaderFromBuf(data)
	n := DecodeNode(r)
	if r.Err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptNode, r.Err)
	}
	actual, err := n.ComputeHash(t.scheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptNode, err)
	}
	if !actual.Equals(h) {
		t.log.Warn("node payload does not hash to its storage key",
			zap.Stringer("expected", h), zap.Stringer("actual", actual))
		return nil, fmt.Errorf("%w: node hash mismatch", ErrCorruptNode)
	}
	n.SetFlushed()
	t.nodes[h] = n
	return n, nil
}

// record puts a freshly built node into the working set and marks it dirty.
func (t *Trie) record(n Node) util.Hash {
	h := n.Hash()
	t.nodes[h] = n
	t.dirty[h] = true
	return h
}

// addLeaf recursively adds leaf into the subtree rooted at curr, returning
// the new subtree root and whether that root is terminal.
func (t *Trie) addLeaf(leaf *LeafNode, curr util.Hash, level int) (util.Hash, bool, error) {
	if level > MaxLevels {
		return util.Hash{}, false, ErrDepthExceeded
	}
	n, err := t.getNode(curr)
	if err != nil {
		return util.Hash{}, false, err
	}
	switch n := n.(type) {
	case EmptyNode:
		return t.record(leaf), true, nil
	case *LeafNode:
		if n.Hash().Equals(leaf.Hash()) {
			// leaf already stored
			return curr, true, nil
		}
		if sameSlot(n.Key(), leaf.Key()) {
			return t.record(leaf), true, nil
		}
		h, err := t.pushLeaf(n, leaf, level)
		return h, false, err
	case *BranchNode:
		if level == MaxLevels {
			return util.Hash{}, false, ErrDepthExceeded
		}
		lt, rt := n.LeftTerminal(), n.RightTerminal()
		left, right := n.Left(), n.Right()
		if getPath(leaf.Key(), level) {
			right, rt, err = t.addLeaf(leaf, right, level+1)
		} else {
			left, lt, err = t.addLeaf(leaf, left, level+1)
		}
		if err != nil {
			return util.Hash{}, false, err
		}
		nb, err := NewBranchNode(t.scheme, branchType(lt, rt), left, right)
		if err != nil {
			return util.Hash{}, false, err
		}
		return t.record(nb), false, nil
	}
	return util.Hash{}, false, fmt.Errorf("%w: unexpected node kind", ErrCorruptNode)
}

// pushLeaf pushes the existing old leaf down until its bit path diverges
// from the new leaf, at which point both leaves are stored under a common
// branch. Returns the root of the built subtree, always a branch.
func (t *Trie) pushLeaf(old, leaf *LeafNode, level int) (util.Hash, error) {
	if level >= MaxLevels {
		return util.Hash{}, ErrDepthExceeded
	}
	oldPath := getPath(old.Key(), level)
	newPath := getPath(leaf.Key(), level)
	if oldPath == newPath {
		// the bits agree, emit a branch with an empty sibling and go deeper
		child, err := t.pushLeaf(old, leaf, level+1)
		if err != nil {
			return util.Hash{}, err
		}
		var nb *BranchNode
		if oldPath {
			nb, err = NewBranchNode(t.scheme, BranchLTRB, util.Hash{}, child)
		} else {
			nb, err = NewBranchNode(t.scheme, BranchLBRT, child, util.Hash{})
		}
		if err != nil {
			return util.Hash{}, err
		}
		return t.record(nb), nil
	}
	// diverged, both leaves are placed per their bit at this depth
	t.record(leaf)
	var nb *BranchNode
	var err error
	if newPath {
		nb, err = NewBranchNode(t.scheme, BranchLTRT, old.Hash(), leaf.Hash())
	} else {
		nb, err = NewBranchNode(t.scheme, BranchLTRT, leaf.Hash(), old.Hash())
	}
	if err != nil {
		return util.Hash{}, err
	}
	return t.record(nb), nil
}

// deleteNode recursively removes the leaf with the given key from the
// subtree rooted at curr, contracting branches left with a sole leaf on the
// way back up. Returns the new subtree root and whether it is terminal.
func (t *Trie) deleteNode(curr util.Hash, nodeKey util.Hash, level int) (util.Hash, bool, error) {
	if level > MaxLevels {
		return util.Hash{}, false, ErrDepthExceeded
	}
	n, err := t.getNode(curr)
	if err != nil {
		return util.Hash{}, false, err
	}
	switch n := n.(type) {
	case EmptyNode:
		return util.Hash{}, false, ErrNotFound
	case *LeafNode:
		if !sameSlot(n.Key(), nodeKey) {
			return util.Hash{}, false, ErrNotFound
		}
		return util.Hash{}, true, nil
	case *BranchNode:
		if level == MaxLevels {
			return util.Hash{}, false, ErrDepthExceeded
		}
		var child, sibling util.Hash
		var siblingTerminal bool
		path := getPath(nodeKey, level)
		if path {
			child, sibling, siblingTerminal = n.Right(), n.Left(), n.LeftTerminal()
		} else {
			child, sibling, siblingTerminal = n.Left(), n.Right(), n.RightTerminal()
		}
		newChild, newChildTerminal, err := t.deleteNode(child, nodeKey, level+1)
		if err != nil {
			return util.Hash{}, false, err
		}
		if newChildTerminal && siblingTerminal {
			// a branch with a sole surviving terminal child contracts
			// into that child, pulling it one level up
			if newChild.IsZero() {
				return sibling, true, nil
			}
			if sibling.IsZero() {
				return newChild, true, nil
			}
		}
		var left, right util.Hash
		var lt, rt bool
		if path {
			left, right = sibling, newChild
			lt, rt = siblingTerminal, newChildTerminal
		} else {
			left, right = newChild, sibling
			lt, rt = newChildTerminal, siblingTerminal
		}
		nb, err := NewBranchNode(t.scheme, branchType(lt, rt), left, right)
		if err != nil {
			return util.Hash{}, false, err
		}
		return t.record(nb), false, nil
	}
	return util.Hash{}, false, fmt.Errorf("%w: unexpected node kind", ErrCorruptNode)
}

// getPath returns the bit of nodeKey selecting the child at the given
// depth: bit 0 at depth 0 read LSB-first, 0 descends left, 1 right.
func getPath(nodeKey util.Hash, level int) bool {
	return nodeKey[util.HashSize-level/8-1]&(1<<uint(level%8)) != 0
}

// sameSlot reports whether two secure keys address the same leaf slot. Only
// the low 248 bits take part in path traversal, keys colliding there are
// the same slot.
func sameSlot(a, b util.Hash) bool {
	a[0], b[0] = 0, 0
	return a == b
}
