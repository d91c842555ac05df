package zktrie

import "errors"

var (
	// ErrNotFound is returned when a requested trie item is missing.
	ErrNotFound = errors.New("item not found")
	// ErrNodeNotFound is returned when a node referenced by the trie is
	// absent from the backend.
	ErrNodeNotFound = errors.New("node not found in the backend")
	// ErrCorruptNode is returned when a backend payload does not
	// deserialize or its recomputed hash does not match the key it was
	// stored under.
	ErrCorruptNode = errors.New("corrupt node")
	// ErrDepthExceeded is returned when a traversal runs past the maximum
	// trie depth, which indicates structural corruption.
	ErrDepthExceeded = errors.New("maximum trie depth exceeded")
	// ErrInvalidEncoding is returned on malformed caller input: an empty
	// slot list or a raw key longer than 32 bytes.
	ErrInvalidEncoding = errors.New("invalid value encoding")
)
