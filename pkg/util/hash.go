package util

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// HashSize is the size of Hash in bytes.
const HashSize = 32

// Hash is a 32-byte big-endian representation of a field element. It is used
// both for node commitments and for secure keys. The zero value is the field
// zero, which is also the root of an empty trie.
//
// Not every 32-byte value is a valid field element; a Hash is only ever
// produced by a hash scheme or validated through one. Arbitrary blobs are
// carried as Byte32 instead.
type Hash [HashSize]uint8

// HashDecodeString attempts to decode the given big-endian hex string into
// a Hash.
func HashDecodeString(s string) (h Hash, err error) {
	if len(s) != HashSize*2 {
		return h, fmt.Errorf("expected string size of %d got %d", HashSize*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	return HashDecodeBytes(b)
}

// HashDecodeBytes attempts to decode the given big-endian bytes into a Hash.
func HashDecodeBytes(b []byte) (h Hash, err error) {
	if len(b) != HashSize {
		return h, fmt.Errorf("expected []byte of size %d got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashFromBigInt converts a non-negative big integer into a Hash. The value
// must fit into 32 bytes.
func HashFromBigInt(i *big.Int) Hash {
	var h Hash
	i.FillBytes(h[:])
	return h
}

// Bytes returns a big-endian byte slice representation of h.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// BigInt interprets h as a big-endian unsigned integer.
func (h Hash) BigInt() *big.Int {
	return new(big.Int).SetBytes(h[:])
}

// IsZero reports whether h is the field zero.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Equals returns true if both Hash values are the same.
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// String implements the stringer interface.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// UnmarshalJSON implements the json unmarshaller interface.
func (h *Hash) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	js = strings.TrimPrefix(js, "0x")
	*h, err = HashDecodeString(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + h.String())
}
