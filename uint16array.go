package ints

// Uint16Array is an immutable IntArray storing one unsigned 16-bit
// unit per value.  It holds values in [0, 65536).
type Uint16Array struct {
	ca []uint16
}

var _ IntArray = (*Uint16Array)(nil)

// NewUint16Array returns a Uint16Array holding a copy of values.  It
// panics if any element lies outside [0, 65536).
func NewUint16Array(values []int) *Uint16Array {
	return NewUint16ArrayRange(values, 0, len(values))
}

// NewUint16ArrayRange returns a Uint16Array holding a copy of
// values[from:to].  It panics if the range is invalid or if any
// element of the range lies outside [0, 65536).
func NewUint16ArrayRange(values []int, from, to int) *Uint16Array {
	return newUint16ArrayBounded(values[from:to], 65536)
}

func newUint16ArrayBounded(values []int, valueSize int) *Uint16Array {
	ca := make([]uint16, len(values))
	for j, v := range values {
		checkBounded(v, valueSize)
		ca[j] = uint16(v)
	}
	return &Uint16Array{ca}
}

// Size returns the number of elements.
func (a *Uint16Array) Size() int {
	return len(a.ca)
}

// Get returns the element at the specified index.
func (a *Uint16Array) Get(index int) int {
	return int(a.ca[index])
}

func (a *Uint16Array) String() string {
	return AsString(a)
}
