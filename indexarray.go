package ints

import "fmt"

// IndexArray pairs an IntArray whose elements are drawn from a
// bounded set of non-negative integers with the exclusive upper
// bound of that set.  The caller is responsible for the bound being
// correct; elements are not re-validated when wrapping an existing
// IntArray.  The recommended bound is the smallest integer greater
// than every element (see ValueSizeOf), but any upper bound is
// accepted.
//
// IndexArray is immutable.
type IndexArray struct {
	ia        IntArray
	valueSize int
}

var _ IntArray = (*IndexArray)(nil)

// NewIndexArray returns an IndexArray holding a copy of values in
// the representation NewPacked selects for valueSize.  It panics if
// valueSize < 1 or if any element lies outside [0, valueSize).
func NewIndexArray(values []int, valueSize int) *IndexArray {
	return &IndexArray{NewPacked(values, valueSize), valueSize}
}

// WrapIndexArray returns an IndexArray wrapping ia without
// re-encoding it.  The returned value is a shared read-only view of
// ia.  It panics if ia is nil.
func WrapIndexArray(ia IntArray, valueSize int) *IndexArray {
	if ia == nil {
		panic("ints: nil IntArray")
	}
	return &IndexArray{ia, valueSize}
}

// Size returns the number of elements.
func (x *IndexArray) Size() int {
	return x.ia.Size()
}

// Get returns the element at the specified index.
func (x *IndexArray) Get(index int) int {
	return x.ia.Get(index)
}

// ValueSize returns the exclusive upper bound specified at
// construction.
func (x *IndexArray) ValueSize() int {
	return x.valueSize
}

// IntArray returns the wrapped IntArray.
func (x *IndexArray) IntArray() IntArray {
	return x.ia
}

func (x *IndexArray) String() string {
	return AsString(x)
}

// ValueSizeOf returns the smallest integer greater than every
// element of values, i.e. the minimal valid value size.  It panics
// if any element is negative.
func ValueSizeOf(values []int) int {
	max := -1
	for _, v := range values {
		if v < 0 {
			panic(fmt.Sprintf("ints: negative value: %d", v))
		}
		if v > max {
			max = v
		}
	}
	return max + 1
}

// ValueSizeOfArray returns the smallest integer greater than every
// element of ia, i.e. the minimal valid value size.  It panics if
// any element is negative.
func ValueSizeOfArray(ia IntArray) int {
	max := -1
	for j, n := 0, ia.Size(); j < n; j++ {
		v := ia.Get(j)
		if v < 0 {
			panic(fmt.Sprintf("ints: negative value: %d", v))
		}
		if v > max {
			max = v
		}
	}
	return max + 1
}
