package ints

import "sort"

// WrappedIntArray is an immutable IntArray storing one signed 32-bit
// unit per value.  It is the fallback representation for value sizes
// above 65536.
type WrappedIntArray struct {
	ia []int32
}

var _ IntArray = (*WrappedIntArray)(nil)

// NewWrappedIntArray returns a WrappedIntArray holding a copy of
// values.
func NewWrappedIntArray(values []int) *WrappedIntArray {
	return NewWrappedIntArrayRange(values, 0, len(values))
}

// NewWrappedIntArrayRange returns a WrappedIntArray holding a copy
// of values[from:to].  It panics if the range is invalid.
func NewWrappedIntArrayRange(values []int, from, to int) *WrappedIntArray {
	src := values[from:to]
	ia := make([]int32, len(src))
	for j, v := range src {
		ia[j] = int32(v)
	}
	return &WrappedIntArray{ia}
}

// NewWrappedIntArrayBounded returns a WrappedIntArray holding a copy
// of values.  It panics if any element lies outside [0, valueSize).
func NewWrappedIntArrayBounded(values []int, valueSize int) *WrappedIntArray {
	ia := make([]int32, len(values))
	for j, v := range values {
		checkBounded(v, valueSize)
		ia[j] = int32(v)
	}
	return &WrappedIntArray{ia}
}

// Size returns the number of elements.
func (a *WrappedIntArray) Size() int {
	return len(a.ia)
}

// Get returns the element at the specified index.
func (a *WrappedIntArray) Get(index int) int {
	return int(a.ia[index])
}

// ToArray returns a copy of the elements as an []int.
func (a *WrappedIntArray) ToArray() []int {
	cp := make([]int, len(a.ia))
	for j, v := range a.ia {
		cp[j] = int(v)
	}
	return cp
}

// BinarySearch searches a sorted array for key.  It returns the index
// of a matching element, or -(insertionPoint)-1 if key is absent,
// where insertionPoint is the index at which key would be inserted.
// The result is >= 0 if and only if key is present.  The result is
// undefined if the array is not sorted ascending.
func (a *WrappedIntArray) BinarySearch(key int) int {
	return a.BinarySearchRange(0, len(a.ia), key)
}

// BinarySearchRange searches the sorted sub-range [from, to) for key,
// with the same result encoding as BinarySearch.  It panics if
// from < 0 || to > Size() || from > to.
func (a *WrappedIntArray) BinarySearchRange(from, to, key int) int {
	sub := a.ia[from:to]
	i := sort.Search(len(sub), func(j int) bool { return int(sub[j]) >= key })
	if i < len(sub) && int(sub[i]) == key {
		return from + i
	}
	return -(from + i) - 1
}

func (a *WrappedIntArray) String() string {
	return AsString(a)
}
