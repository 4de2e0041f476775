package ints

import (
	"fmt"
)

// PackedIntArray is an immutable IntArray storing several values per
// byte.  It is the narrowest representation selected by NewPacked,
// for value sizes of at most 16.
//
//	  | shift, the bit offset into the byte
//	  V
//	7 6 5 4 3 2 1 0
//	    \-----/
//	     bits - the field holding value index%perByte
//
// Field widths are 1, 2, or 4 bits, so a field never spans a byte
// boundary.
type PackedIntArray struct {
	ba   []byte
	bits uint
	mask byte
	size int
}

var _ IntArray = (*PackedIntArray)(nil)

// bitsPerValue returns the packed field width for the half-open
// value range [0, valueSize).  Widths are restricted to divisors
// of 8 so that no field crosses a byte boundary.
func bitsPerValue(valueSize int) uint {
	switch {
	case valueSize <= 2:
		return 1
	case valueSize <= 4:
		return 2
	default:
		return 4
	}
}

// NewPackedIntArray returns a PackedIntArray holding a copy of
// values.  It panics if valueSize < 1 || valueSize > 16, or if any
// element lies outside [0, valueSize).
func NewPackedIntArray(values []int, valueSize int) *PackedIntArray {
	return NewPackedIntArrayRange(values, 0, len(values), valueSize)
}

// NewPackedIntArrayRange returns a PackedIntArray holding a copy of
// values[from:to].  It panics if valueSize < 1 || valueSize > 16, if
// the range is invalid, or if any element of the range lies outside
// [0, valueSize).
func NewPackedIntArrayRange(values []int, from, to, valueSize int) *PackedIntArray {
	if valueSize < 1 || valueSize > 16 {
		panic(fmt.Sprintf("ints: invalid packed value size: %d", valueSize))
	}
	src := values[from:to]
	bits := bitsPerValue(valueSize)
	mask := byte(1<<bits) - 1
	perByte := 8 / bits
	p := &PackedIntArray{
		ba:   make([]byte, (uint(len(src))+perByte-1)/perByte),
		bits: bits,
		mask: mask,
		size: len(src),
	}
	for j, v := range src {
		checkBounded(v, valueSize)
		shift := (uint(j) % perByte) * bits
		p.ba[uint(j)/perByte] |= byte(v) << shift
	}
	return p
}

// Size returns the number of elements.
func (p *PackedIntArray) Size() int {
	return p.size
}

// Get returns the element at the specified index.  Several elements
// share each byte, so the index is checked explicitly rather than
// relying on the byte-slice bounds.
func (p *PackedIntArray) Get(index int) int {
	if index < 0 || index >= p.size {
		panic(fmt.Sprintf("ints: index %d out of range [0, %d)", index, p.size))
	}
	i := uint(index)
	perByte := 8 / p.bits
	shift := (i % perByte) * p.bits
	return int((p.ba[i/perByte] >> shift) & p.mask)
}

func (p *PackedIntArray) String() string {
	return AsString(p)
}
