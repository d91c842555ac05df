package storage

import (
	"errors"
	"fmt"

	"github.com/zkrollup/zktrie/pkg/storage/dbconfig"
)

// ErrKeyNotFound is an error returned by Store implementations
// when a certain key is not found.
var ErrKeyNotFound = errors.New("key not found")

// Backend types accepted in dbconfig.DBConfiguration.Type.
const (
	LevelDB    = "leveldb"
	InMemoryDB = "inmemory"
	BoltDB     = "boltdb"
)

// Store is the underlying KV backend for trie nodes. Keys are 32-byte node
// hashes and values are node payloads. The trie only ever adds records,
// superseded nodes are left in place, so no Delete is required. Overwrites
// happen with identical payloads (content addressing), which keeps repeated
// writes harmless.
type Store interface {
	// Get returns the value for the given key or ErrKeyNotFound.
	Get([]byte) ([]byte, error)
	// Put saves the given key-value pair.
	Put(key, value []byte) error
	Close() error
}

// NewStore creates storage with preselected in configuration database type.
func NewStore(cfg dbconfig.DBConfiguration) (Store, error) {
	var store Store
	var err error
	switch cfg.Type {
	case LevelDB:
		store, err = NewLevelDBStore(cfg.LevelDBOptions)
	case InMemoryDB:
		store = NewMemoryStore()
	case BoltDB:
		store, err = NewBoltDBStore(cfg.BoltDBOptions)
	default:
		return nil, fmt.Errorf("unknown storage: %s", cfg.Type)
	}
	return store, err
}
