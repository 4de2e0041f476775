// package ints implements compact in-memory representations for
// sequences of small non-negative integers:
//  1. an immutable IntArray contract with four storage widths
//     (bit-packed, byte, uint16, int32), selected by a factory from
//     the declared value range
//  2. an IndexArray wrapper carrying the declared range alongside
//     the encoded sequence
//  3. a mutable, array-backed IntIntMap with dense storage
package ints

import (
	"fmt"
	"math"
)

// IntArray is an immutable sequence of non-negative integers.
// Implementations never mutate after construction, so a constructed
// IntArray may be shared freely for concurrent reads.
type IntArray interface {
	// Size returns the number of elements.
	Size() int
	// Get returns the element at the specified index.  Get panics
	// if index < 0 || index >= Size().
	Get(index int) int
}

// NewPacked returns an IntArray holding a copy of values, stored in
// the narrowest representation for the half-open range [0, valueSize):
// sub-byte bit fields for valueSize <= 16, one byte per value for
// valueSize <= 256, two bytes for valueSize <= 65536, and four bytes
// otherwise.  NewPacked panics if valueSize < 1 or if any element
// lies outside [0, valueSize).
func NewPacked(values []int, valueSize int) IntArray {
	if valueSize < 1 {
		panic(fmt.Sprintf("ints: invalid value size: %d", valueSize))
	}
	switch {
	case valueSize <= 16:
		return NewPackedIntArray(values, valueSize)
	case valueSize <= 256:
		return newUint8ArrayBounded(values, valueSize)
	case valueSize <= 65536:
		return newUint16ArrayBounded(values, valueSize)
	default:
		return NewWrappedIntArrayBounded(values, valueSize)
	}
}

// New returns an IntArray holding a copy of values.  Each element is
// stored in 1, 2, or 4 bytes depending on valueSize; bit packing is
// never used.  New panics if valueSize < 1 or if any element lies
// outside [0, valueSize).
func New(values []int, valueSize int) IntArray {
	if valueSize < 1 {
		panic(fmt.Sprintf("ints: invalid value size: %d", valueSize))
	}
	switch {
	case valueSize <= 256:
		return newUint8ArrayBounded(values, valueSize)
	case valueSize <= 65536:
		return newUint16ArrayBounded(values, valueSize)
	default:
		return NewWrappedIntArrayBounded(values, valueSize)
	}
}

// ToArray materializes a copy of ia as an []int.
func ToArray(ia IntArray) []int {
	cp := make([]int, ia.Size())
	for j := range cp {
		cp[j] = ia.Get(j)
	}
	return cp
}

// AsString returns a debug rendering of ia.
func AsString(ia IntArray) string {
	return fmt.Sprintf("%v", ToArray(ia))
}

// Equal reports whether a and b represent the same sequence of
// integer values.
func Equal(a, b IntArray) bool {
	if a == b {
		return true
	}
	if a.Size() != b.Size() {
		return false
	}
	for j, n := 0, a.Size(); j < n; j++ {
		if a.Get(j) != b.Get(j) {
			return false
		}
	}
	return true
}

// Max returns the maximum element, or math.MinInt32 if ia is empty.
func Max(ia IntArray) int {
	max := math.MinInt32
	for j, n := 0, ia.Size(); j < n; j++ {
		if v := ia.Get(j); v > max {
			max = v
		}
	}
	return max
}

// Min returns the minimum element, or math.MaxInt32 if ia is empty.
func Min(ia IntArray) int {
	min := math.MaxInt32
	for j, n := 0, ia.Size(); j < n; j++ {
		if v := ia.Get(j); v < min {
			min = v
		}
	}
	return min
}

func checkBounded(v, valueSize int) {
	if v < 0 || v >= valueSize {
		panic(fmt.Sprintf("ints: value %d out of range [0, %d)", v, valueSize))
	}
}
