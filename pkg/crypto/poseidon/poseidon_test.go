package poseidon

import (
	"math/big"
	"testing"

	"github.com/iden3/go-iden3-crypto/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrollup/zktrie/pkg/util"
)

func TestHashDeterministic(t *testing.T) {
	var s Scheme
	a := util.HashFromBigInt(big.NewInt(1))
	b := util.HashFromBigInt(big.NewInt(2))

	h1, err := s.Hash(a, b)
	require.NoError(t, err)
	h2, err := s.Hash(a, b)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.False(t, h1.IsZero())

	// argument order matters
	h3, err := s.Hash(b, a)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestHashOutputInField(t *testing.T) {
	var s Scheme
	h, err := s.Hash(util.Hash{}, util.Hash{})
	require.NoError(t, err)
	require.NoError(t, s.ValidateField(h))
}

func TestHashNotInField(t *testing.T) {
	var s Scheme
	out := util.HashFromBigInt(constants.Q) // field order itself is out of range
	_, err := s.Hash(out, util.Hash{})
	require.ErrorIs(t, err, ErrNotInField)
	_, err = s.Hash(util.Hash{}, out)
	require.ErrorIs(t, err, ErrNotInField)
	require.ErrorIs(t, s.ValidateField(out), ErrNotInField)
}

func TestDomainLeaf(t *testing.T) {
	var s Scheme
	assert.Equal(t, util.HashFromBigInt(big.NewInt(1)), s.DomainLeaf())
}
