package io

import (
	"encoding/binary"
	"io"
)

// BinWriter is a convenient wrapper around an io.Writer and err object.
// Used to simplify error handling when writing into an io.Writer
// from a struct with many fields.
type BinWriter struct {
	w   io.Writer
	u   [4]byte
	Err error
}

// NewBinWriterFromIO makes a BinWriter from io.Writer.
func NewBinWriterFromIO(iow io.Writer) *BinWriter {
	return &BinWriter{w: iow}
}

// WriteB writes a byte into the underlying writer.
func (w *BinWriter) WriteB(u8 byte) {
	w.u[0] = u8
	w.WriteBytes(w.u[:1])
}

// WriteU32LE writes a uint32 into the underlying writer in little-endian
// format.
func (w *BinWriter) WriteU32LE(u32 uint32) {
	binary.LittleEndian.PutUint32(w.u[:4], u32)
	w.WriteBytes(w.u[:4])
}

// WriteBytes writes b into the underlying writer without any length prefix.
func (w *BinWriter) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}
