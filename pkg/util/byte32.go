package util

import "encoding/hex"

// Byte32 is an opaque 32-byte blob, e.g. a storage slot or a keccak code
// hash. Unlike Hash it carries no field-element guarantee: it may only enter
// the hash scheme after a field membership check or through folding.
type Byte32 [32]byte

// NewByte32FromBytes creates a Byte32 from the given bytes, left-padding
// short input with zeroes. Input longer than 32 bytes keeps the trailing 32.
func NewByte32FromBytes(b []byte) Byte32 {
	var v Byte32
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(v[32-len(b):], b)
	return v
}

// Bytes returns a byte slice representation of v.
func (v Byte32) Bytes() []byte {
	b := make([]byte, 32)
	copy(b, v[:])
	return b
}

// String implements the stringer interface.
func (v Byte32) String() string {
	return hex.EncodeToString(v[:])
}
