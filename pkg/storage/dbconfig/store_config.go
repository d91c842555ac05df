/*
Package dbconfig is a micropackage with the yaml-taggable options of the
node store backends.
*/
package dbconfig

type (
	// DBConfiguration selects a node store backend and carries its
	// options. The Type values understood by storage.NewStore are
	// "leveldb", "boltdb" and "inmemory", the latter keeps nodes in a
	// plain map and only suits tests and ephemeral tries.
	DBConfiguration struct {
		Type           string         `yaml:"Type"`
		LevelDBOptions LevelDBOptions `yaml:"LevelDBOptions"`
		BoltDBOptions  BoltDBOptions  `yaml:"BoltDBOptions"`
	}
	// LevelDBOptions configure a LevelDB node store.
	LevelDBOptions struct {
		DataDirectoryPath string `yaml:"DataDirectoryPath"`
		ReadOnly          bool   `yaml:"ReadOnly"`
	}
	// BoltDBOptions configure a BoltDB node store.
	BoltDBOptions struct {
		FilePath string `yaml:"FilePath"`
		ReadOnly bool   `yaml:"ReadOnly"`
	}
)
