package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zkrollup/zktrie/pkg/storage/dbconfig"
)

// testStoreSuite exercises the Store contract shared by all backends.
func testStoreSuite(t *testing.T, s Store) {
	key := []byte("foo")
	value := []byte("bar")

	_, err := s.Get(key)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Put(key, value))
	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// overwrite with the same value, repeated puts are harmless
	require.NoError(t, s.Put(key, value))
	got, err = s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	require.NoError(t, s.Put(key, []byte("baz")))
	got, err = s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("baz"), got)

	require.NoError(t, s.Close())
}

func TestMemoryStore(t *testing.T) {
	testStoreSuite(t, NewMemoryStore())
}

func TestLevelDBStore(t *testing.T) {
	s, err := NewLevelDBStore(dbconfig.LevelDBOptions{
		DataDirectoryPath: t.TempDir(),
	})
	require.NoError(t, err)
	testStoreSuite(t, s)
}

func TestBoltDBStore(t *testing.T) {
	s, err := NewBoltDBStore(dbconfig.BoltDBOptions{
		FilePath: filepath.Join(t.TempDir(), "test_bolt_db"),
	})
	require.NoError(t, err)
	testStoreSuite(t, s)
}

func TestMemoryStorePutCopies(t *testing.T) {
	s := NewMemoryStore()
	value := []byte{1, 2, 3}
	require.NoError(t, s.Put([]byte("k"), value))
	value[0] = 0xff
	got, err := s.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestNewStore(t *testing.T) {
	t.Run("InMemory", func(t *testing.T) {
		s, err := NewStore(dbconfig.DBConfiguration{Type: InMemoryDB})
		require.NoError(t, err)
		require.IsType(t, (*MemoryStore)(nil), s)
		require.NoError(t, s.Close())
	})
	t.Run("LevelDB", func(t *testing.T) {
		s, err := NewStore(dbconfig.DBConfiguration{
			Type:           LevelDB,
			LevelDBOptions: dbconfig.LevelDBOptions{DataDirectoryPath: t.TempDir()},
		})
		require.NoError(t, err)
		require.IsType(t, (*LevelDBStore)(nil), s)
		require.NoError(t, s.Close())
	})
	t.Run("BoltDB", func(t *testing.T) {
		s, err := NewStore(dbconfig.DBConfiguration{
			Type:          BoltDB,
			BoltDBOptions: dbconfig.BoltDBOptions{FilePath: filepath.Join(t.TempDir(), "bolt")},
		})
		require.NoError(t, err)
		require.IsType(t, (*BoltDBStore)(nil), s)
		require.NoError(t, s.Close())
	})
	t.Run("Unknown", func(t *testing.T) {
		_, err := NewStore(dbconfig.DBConfiguration{Type: "redis"})
		require.Error(t, err)
	})
}

func TestDBConfigurationYAML(t *testing.T) {
	data := `
Type: boltdb
BoltDBOptions:
  FilePath: /tmp/trie.bolt
  ReadOnly: true
`
	var cfg dbconfig.DBConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(data), &cfg))
	assert.Equal(t, BoltDB, cfg.Type)
	assert.Equal(t, "/tmp/trie.bolt", cfg.BoltDBOptions.FilePath)
	assert.True(t, cfg.BoltDBOptions.ReadOnly)
}
