package ints

import (
	"bytes"
	"io"
)

// Uint8Array is an immutable IntArray storing one unsigned byte per
// value.  It holds values in [0, 256).
type Uint8Array struct {
	ba []byte
}

var _ IntArray = (*Uint8Array)(nil)
var _ io.WriterTo = (*Uint8Array)(nil)

// NewUint8Array returns a Uint8Array holding a copy of values.  It
// panics if any element lies outside [0, 256).
func NewUint8Array(values []int) *Uint8Array {
	return NewUint8ArrayRange(values, 0, len(values))
}

// NewUint8ArrayRange returns a Uint8Array holding a copy of
// values[from:to].  It panics if the range is invalid or if any
// element of the range lies outside [0, 256).
func NewUint8ArrayRange(values []int, from, to int) *Uint8Array {
	return newUint8ArrayBounded(values[from:to], 256)
}

func newUint8ArrayBounded(values []int, valueSize int) *Uint8Array {
	ba := make([]byte, len(values))
	for j, v := range values {
		checkBounded(v, valueSize)
		ba[j] = byte(v)
	}
	return &Uint8Array{ba}
}

// NewUint8ArrayFromBytes returns a Uint8Array holding a copy of ba,
// each byte interpreted as an unsigned value in [0, 256).
func NewUint8ArrayFromBytes(ba []byte) *Uint8Array {
	cp := make([]byte, len(ba))
	copy(cp, ba)
	return &Uint8Array{cp}
}

// NewUint8ArrayFromBytesRange returns a Uint8Array holding a copy of
// ba[from:to].
func NewUint8ArrayFromBytesRange(ba []byte, from, to int) *Uint8Array {
	return NewUint8ArrayFromBytes(ba[from:to])
}

// NewUint8ArrayFromBuffer returns a Uint8Array holding a copy of the
// accumulated contents of buf.  The buffer is not consumed.
func NewUint8ArrayFromBuffer(buf *bytes.Buffer) *Uint8Array {
	return NewUint8ArrayFromBytes(buf.Bytes())
}

// Size returns the number of elements.
func (a *Uint8Array) Size() int {
	return len(a.ba)
}

// Get returns the element at the specified index.
func (a *Uint8Array) Get(index int) int {
	return int(a.ba[index])
}

// WriteTo writes the raw byte representation to w.  Callers encoding
// the sequence into an external format consume it through this
// method rather than element by element.
func (a *Uint8Array) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.ba)
	return int64(n), err
}

func (a *Uint8Array) String() string {
	return AsString(a)
}
