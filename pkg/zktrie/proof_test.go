package zktrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkrollup/zktrie/pkg/storage"
	"github.com/zkrollup/zktrie/pkg/util"
)

func TestProof_Inclusion(t *testing.T) {
	tr := newPoseidonTrie(t, storage.NewMemoryStore())
	keys := [][]byte{[]byte("k-one"), []byte("k-two"), []byte("k-three"), []byte("k-four")}
	for i, k := range keys {
		require.NoError(t, tr.Update(k, testValues(byte(i+1)), 1))
	}
	root := tr.Root()

	for _, k := range keys {
		p, err := tr.Prove(k)
		require.NoError(t, err)
		assert.True(t, p.Includes())
		assert.True(t, VerifyProof(tr.scheme, root, p))

		// verification against a different root fails
		assert.False(t, VerifyProof(tr.scheme, util.Hash{31: 1}, p))
	}
}

func TestProof_Absence(t *testing.T) {
	tr := newPoseidonTrie(t, storage.NewMemoryStore())
	require.NoError(t, tr.Update([]byte("present"), testValues(1), 1))
	require.NoError(t, tr.Update([]byte("also-present"), testValues(2), 1))

	p, err := tr.Prove([]byte("absent"))
	require.NoError(t, err)
	assert.False(t, p.Includes())
	assert.True(t, VerifyProof(tr.scheme, tr.Root(), p))
}

func TestProof_SingleLeaf(t *testing.T) {
	tr := newPoseidonTrie(t, storage.NewMemoryStore())
	require.NoError(t, tr.Update([]byte("only"), testValues(1), 1))

	p, err := tr.Prove([]byte("only"))
	require.NoError(t, err)
	assert.Empty(t, p.Siblings)
	assert.True(t, p.Includes())
	assert.True(t, VerifyProof(tr.scheme, tr.Root(), p))
}

func TestProof_TamperRejected(t *testing.T) {
	tr := newTestTrie(t)
	// a run of empty siblings between two real ones
	require.NoError(t, tr.Update(testKey(0x01), testValues(1), 1))
	require.NoError(t, tr.Update(testKey(0x09), testValues(2), 1))
	require.NoError(t, tr.Update(testKey(0x02), testValues(3), 1))
	root := tr.Root()

	p, err := tr.Prove(testKey(0x09))
	require.NoError(t, err)
	require.NotEmpty(t, p.Siblings)
	require.True(t, VerifyProof(testScheme{}, root, p))

	for i := range p.Siblings {
		orig := p.Siblings[i]
		p.Siblings[i][31] ^= 0x01
		assert.False(t, VerifyProof(testScheme{}, root, p), "sibling %d", i)
		p.Siblings[i] = orig
	}
	require.True(t, VerifyProof(testScheme{}, root, p))

	// a substituted terminal node is rejected as well
	fake, err := NewLeafNode(testScheme{}, p.NodeKey, testValues(0x7f), 1)
	require.NoError(t, err)
	p.Terminal = fake
	assert.False(t, VerifyProof(testScheme{}, root, p))
}

func TestProof_EmptyTrie(t *testing.T) {
	tr := newTestTrie(t)
	p, err := tr.Prove(testKey(0x01))
	require.NoError(t, err)
	assert.False(t, p.Includes())
	assert.Empty(t, p.Siblings)
	assert.True(t, VerifyProof(testScheme{}, tr.Root(), p))
}
