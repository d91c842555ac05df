package io

import (
	"bytes"
	"encoding/binary"
	"io"
)

// BinReader is a convenient wrapper around an io.Reader and err object.
// Used to simplify error handling when reading into a struct with many fields.
type BinReader struct {
	r   io.Reader
	u   [4]byte
	Err error
}

// NewBinReaderFromIO makes a BinReader from io.Reader.
func NewBinReaderFromIO(ior io.Reader) *BinReader {
	return &BinReader{r: ior}
}

// NewBinReaderFromBuf makes a BinReader from byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return NewBinReaderFromIO(bytes.NewReader(b))
}

// ReadB reads a byte from the underlying reader.
func (r *BinReader) ReadB() byte {
	r.ReadBytes(r.u[:1])
	if r.Err != nil {
		return 0
	}
	return r.u[0]
}

// ReadU32LE reads a uint32 from the underlying reader in little-endian format.
func (r *BinReader) ReadU32LE() uint32 {
	r.ReadBytes(r.u[:4])
	if r.Err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(r.u[:4])
}

// ReadBytes fills the provided slice from the underlying reader.
func (r *BinReader) ReadBytes(buf []byte) {
	if r.Err != nil {
		return
	}
	_, r.Err = io.ReadFull(r.r, buf)
}
