package state

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrollup/zktrie/pkg/util"
)

func TestAccountEncodeValues(t *testing.T) {
	acc := &Account{
		Nonce:            7,
		CodeSize:         42,
		Balance:          big.NewInt(10),
		KeccakCodeHash:   util.NewByte32FromBytes([]byte{0xab}),
		PoseidonCodeHash: util.HashFromBigInt(big.NewInt(3)),
	}
	values, flag := acc.EncodeValues()
	require.Len(t, values, 5)
	assert.EqualValues(t, 8, flag)

	// slot 0: zero padding, then code size and nonce as big-endian u64
	assert.Equal(t, util.Byte32{}, util.NewByte32FromBytes(values[0][:16]))
	assert.Equal(t, byte(42), values[0][23])
	assert.Equal(t, byte(7), values[0][31])
	assert.Equal(t, byte(10), values[1][31])
	assert.Equal(t, acc.KeccakCodeHash, values[3])
	assert.Equal(t, util.Byte32(acc.PoseidonCodeHash), values[4])
}

func TestAccountRoundtrip(t *testing.T) {
	acc := &Account{
		Nonce:            1 << 40,
		CodeSize:         123456,
		Balance:          new(big.Int).Lsh(big.NewInt(1), 200),
		StorageRoot:      util.HashFromBigInt(big.NewInt(99)),
		KeccakCodeHash:   util.NewByte32FromBytes([]byte{0xde, 0xad}),
		PoseidonCodeHash: util.HashFromBigInt(big.NewInt(5)),
	}
	values, _ := acc.EncodeValues()

	var got Account
	require.NoError(t, got.DecodeValues(values))
	assert.Equal(t, acc.Nonce, got.Nonce)
	assert.Equal(t, acc.CodeSize, got.CodeSize)
	assert.Equal(t, 0, acc.Balance.Cmp(got.Balance))
	assert.Equal(t, acc.StorageRoot, got.StorageRoot)
	assert.Equal(t, acc.KeccakCodeHash, got.KeccakCodeHash)
	assert.Equal(t, acc.PoseidonCodeHash, got.PoseidonCodeHash)
}

func TestAccountDecodeBadLength(t *testing.T) {
	var acc Account
	require.Error(t, acc.DecodeValues(make([]util.Byte32, 4)))
	require.Error(t, acc.DecodeValues(nil))
}

func TestStorageValueRoundtrip(t *testing.T) {
	v := StorageValue(util.NewByte32FromBytes([]byte{1, 2, 3}))
	values, flag := v.EncodeValues()
	require.Len(t, values, 1)
	assert.EqualValues(t, 1, flag)

	var got StorageValue
	require.NoError(t, got.DecodeValues(values))
	assert.Equal(t, v, got)

	require.Error(t, got.DecodeValues(make([]util.Byte32, 2)))
}
