package zktrie

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/zkrollup/zktrie/pkg/util"
)

// HashScheme is an arity-2 hash over field elements. The concrete scheme is
// pinned by the commitment contract: both sides of a proof must agree on it
// bit-exactly, see pkg/crypto/poseidon for the canonical instantiation.
type HashScheme interface {
	// Hash mixes two field elements into one.
	Hash(a, b util.Hash) (util.Hash, error)
	// DomainLeaf returns the domain separator interposed into leaf hashes,
	// typically the field element 1.
	DomainLeaf() util.Hash
	// ValidateField checks that h is a valid field element.
	ValidateField(h util.Hash) error
}

const halfSize = util.HashSize / 2

// HashKey derives the secure key for the given raw key. The raw key bytes
// are split in two halves, each placed into the low half of a zeroed
// 32-byte buffer. The placement is bit-exact across implementations.
func HashKey(s HashScheme, raw []byte) (util.Hash, error) {
	if len(raw) > util.HashSize {
		return util.Hash{}, fmt.Errorf("%w: raw key of %d bytes", ErrInvalidEncoding, len(raw))
	}
	var vLo, vHi util.Hash
	if len(raw) > halfSize {
		copy(vLo[halfSize:], raw[:halfSize])
		copy(vHi[halfSize:halfSize+len(raw)-halfSize], raw[halfSize:])
	} else {
		copy(vLo[halfSize:halfSize+len(raw)], raw)
	}
	return s.Hash(vHi, vLo)
}

// KeyHasher produces secure keys from raw keys.
type KeyHasher interface {
	HashKey(raw []byte) (util.Hash, error)
}

// NoCacheHasher hashes the key on every call.
type NoCacheHasher struct {
	scheme HashScheme
}

// NewNoCacheHasher creates a key hasher without a cache.
func NewNoCacheHasher(s HashScheme) NoCacheHasher {
	return NoCacheHasher{scheme: s}
}

// HashKey implements the KeyHasher interface.
func (h NoCacheHasher) HashKey(raw []byte) (util.Hash, error) {
	return HashKey(h.scheme, raw)
}

// CachedKeyHasher memoizes raw key to secure key mappings in an LRU cache.
// The cache is write-through and is not persisted.
type CachedKeyHasher struct {
	scheme HashScheme
	cache  *lru.Cache
}

// NewCachedKeyHasher creates a key hasher with an LRU cache of the given
// size.
func NewCachedKeyHasher(s HashScheme, size int) (*CachedKeyHasher, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedKeyHasher{scheme: s, cache: c}, nil
}

// HashKey implements the KeyHasher interface.
func (h *CachedKeyHasher) HashKey(raw []byte) (util.Hash, error) {
	if v, ok := h.cache.Get(string(raw)); ok {
		return v.(util.Hash), nil
	}
	nk, err := HashKey(h.scheme, raw)
	if err != nil {
		return util.Hash{}, err
	}
	h.cache.Add(string(raw), nk)
	return nk, nil
}
