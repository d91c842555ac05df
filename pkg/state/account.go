/*
Package state holds the canonical value encodings committed into the trie:
the account record of an address and the 32-byte value of a contract
storage slot. Both satisfy the trie's ValueEncoder/ValueDecoder interfaces
and produce the exact slot shapes the commitment contract pins down.
*/
package state

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/zkrollup/zktrie/pkg/util"
)

// accountSlots is the number of 32-byte slots in an encoded account.
const accountSlots = 5

// accountFlag marks slot 3, the keccak code hash, as not being a field
// element. Bit i of the flag corresponds to slot i.
const accountFlag uint32 = 0b01000

// storageFlag marks the single storage slot for folding.
const storageFlag uint32 = 0b1

// Account is the state of an address as committed into the trie.
type Account struct {
	Nonce    uint64
	CodeSize uint64
	// Balance must fit the field, i.e. be below the field order.
	Balance *big.Int
	// StorageRoot is the root of the contract storage trie.
	StorageRoot util.Hash
	// KeccakCodeHash is not a field element and gets folded during value
	// hashing.
	KeccakCodeHash   util.Byte32
	PoseidonCodeHash util.Hash
}

// EncodeValues returns the 5-slot representation of the account:
// slot 0 packs the code size and nonce as big-endian u64s into the low 16
// bytes, the remaining slots carry balance, storage root and both code
// hashes in order.
func (a *Account) EncodeValues() ([]util.Byte32, uint32) {
	var slot0 util.Byte32
	binary.BigEndian.PutUint64(slot0[16:24], a.CodeSize)
	binary.BigEndian.PutUint64(slot0[24:32], a.Nonce)

	var slot1 util.Byte32
	if a.Balance != nil {
		a.Balance.FillBytes(slot1[:])
	}

	return []util.Byte32{
		slot0,
		slot1,
		util.Byte32(a.StorageRoot),
		a.KeccakCodeHash,
		util.Byte32(a.PoseidonCodeHash),
	}, accountFlag
}

// DecodeValues restores the account from its slot representation.
func (a *Account) DecodeValues(values []util.Byte32) error {
	if len(values) != accountSlots {
		return fmt.Errorf("expected %d account slots, got %d", accountSlots, len(values))
	}
	a.CodeSize = binary.BigEndian.Uint64(values[0][16:24])
	a.Nonce = binary.BigEndian.Uint64(values[0][24:32])
	a.Balance = new(big.Int).SetBytes(values[1][:])
	a.StorageRoot = util.Hash(values[2])
	a.KeccakCodeHash = values[3]
	a.PoseidonCodeHash = util.Hash(values[4])
	return nil
}

// StorageValue is a single contract storage slot. It is always folded, the
// raw 32 bytes carry no field-element guarantee.
type StorageValue util.Byte32

// EncodeValues implements the trie value encoder.
func (v StorageValue) EncodeValues() ([]util.Byte32, uint32) {
	return []util.Byte32{util.Byte32(v)}, storageFlag
}

// DecodeValues implements the trie value decoder.
func (v *StorageValue) DecodeValues(values []util.Byte32) error {
	if len(values) != 1 {
		return fmt.Errorf("expected 1 storage slot, got %d", len(values))
	}
	*v = StorageValue(values[0])
	return nil
}
