package io

// Serializable is the interface implemented by everything that can be encoded
// into (and decoded from) the node wire format. Errors are carried by the
// BinReader/BinWriter Err field.
type Serializable interface {
	DecodeBinary(*BinReader)
	EncodeBinary(*BinWriter)
}
