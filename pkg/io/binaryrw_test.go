package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	w := NewBufBinWriter()
	w.WriteB(0x04)
	w.WriteU32LE(0xdeadbeef)
	w.WriteBytes([]byte{1, 2, 3})
	require.NoError(t, w.Err)

	bs := w.Bytes()
	require.Equal(t, 8, len(bs))

	r := NewBinReaderFromBuf(bs)
	assert.EqualValues(t, 0x04, r.ReadB())
	assert.EqualValues(t, 0xdeadbeef, r.ReadU32LE())
	buf := make([]byte, 3)
	r.ReadBytes(buf)
	require.NoError(t, r.Err)
	assert.Equal(t, []byte{1, 2, 3}, buf)
}

func TestReaderErrLatch(t *testing.T) {
	r := NewBinReaderFromBuf([]byte{0x01})
	_ = r.ReadU32LE()
	require.Error(t, r.Err)

	// subsequent reads keep the first error
	err := r.Err
	_ = r.ReadB()
	require.Equal(t, err, r.Err)
}

func TestBufWriterDrained(t *testing.T) {
	w := NewBufBinWriter()
	w.WriteB(1)
	_ = w.Bytes()
	w.WriteB(2)
	require.ErrorIs(t, w.Err, ErrDrained)

	w.Reset()
	w.WriteB(3)
	require.NoError(t, w.Err)
	require.Equal(t, []byte{3}, w.Bytes())
}
