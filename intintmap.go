package ints

import (
	"fmt"
	"math"
)

const (
	nilIndex   = -1
	loadFactor = 0.75
)

// MaxCapacity is the largest capacity an IntIntMap accepts.
const MaxCapacity = 1 << 30

// IntIntMap is a mutable map with integer keys and integer values.
//
// Entries live contiguously in dense keys/values arrays so that
// Key, Keys, and Values read the live set without scanning buckets.
// Bucket chains are simulated with the next/data index arrays: the
// first nBuckets slots of next are bucket heads, the remaining slots
// are chain nodes linked in ascending key order, and unused chain
// nodes are threaded into a freelist starting at firstFree.  data
// maps a chain node to its entry's current dense position; removals
// relocate the last dense entry into the freed slot and patch that
// back-reference so the dense prefix stays gap-free.
//
// IntIntMap is not safe for concurrent use.
type IntIntMap struct {
	size     int
	nBuckets int

	next      []int
	data      []int // dense position of each chain node's entry
	keys      []int
	values    []int
	firstFree int
}

// NewIntIntMap returns an empty map able to hold capacity entries
// before growing.  It panics if capacity < 1 || capacity > MaxCapacity.
func NewIntIntMap(capacity int) *IntIntMap {
	if capacity < 1 || capacity > MaxCapacity {
		panic(fmt.Sprintf("ints: invalid capacity: %d", capacity))
	}
	m := &IntIntMap{}
	numBuckets := int(math.Ceil(float64(capacity)/loadFactor)) + 1
	m.allocateArrays(capacity, numBuckets)
	m.initializeFields(numBuckets)
	return m
}

func (m *IntIntMap) allocateArrays(capacity, numBuckets int) {
	m.next = make([]int, numBuckets+capacity)
	m.data = make([]int, numBuckets+capacity)
	m.keys = make([]int, capacity)
	m.values = make([]int, capacity)
}

func (m *IntIntMap) initializeFields(numBuckets int) {
	m.size = 0
	m.nBuckets = numBuckets
	m.firstFree = numBuckets
	for j := 0; j < numBuckets; j++ {
		m.next[j] = nilIndex
	}
	for j := numBuckets; j < len(m.next); j++ {
		m.next[j] = j + 1
	}
}

// rehash grows the backing storage to newCapacity and reinserts all
// live entries in dense order.
func (m *IntIntMap) rehash(newCapacity int) {
	if newCapacity > m.size {
		oldSize := m.size
		oldKeys := append([]int(nil), m.keys...)
		oldValues := append([]int(nil), m.values...)
		newNumBuckets := int(math.Ceil(float64(newCapacity) / loadFactor))
		m.allocateArrays(newCapacity, newNumBuckets)
		m.initializeFields(newNumBuckets)
		for j := 0; j < oldSize; j++ {
			m.Put(oldKeys[j], oldValues[j])
		}
	}
}

// Clear removes all keys from the map without reallocating backing
// storage.
func (m *IntIntMap) Clear() {
	m.initializeFields(m.nBuckets)
}

// Contains reports whether the map contains the specified key.
func (m *IntIntMap) Contains(key int) bool {
	return m.indexOf(key) >= 0
}

// indexOf returns the chain node for key, or -1 if key is absent.
func (m *IntIntMap) indexOf(key int) int {
	index := m.next[m.bucket(key)]
	for index != nilIndex && m.keys[m.data[index]] < key {
		index = m.next[index]
	}
	if index != nilIndex && m.keys[m.data[index]] == key {
		return index
	}
	return -1
}

// Put adds or updates the entry for key.  It returns true if the map
// changed.  The index of any key reported by Key may differ before
// and after a Put that changes the map.
func (m *IntIntMap) Put(key, value int) bool {
	prevIndex := m.prevIndex(key)
	nextIndex := m.next[prevIndex]
	if nextIndex == nilIndex || m.keys[m.data[nextIndex]] != key {
		index := m.firstFree
		m.firstFree = m.next[m.firstFree]
		m.next[prevIndex] = index
		m.data[index] = m.size
		m.next[index] = nextIndex
		m.keys[m.size] = key
		m.values[m.size] = value
		m.size++
		if m.size == len(m.keys) {
			m.rehash(3*len(m.keys)/2 + 1)
		}
		return true
	}
	if m.values[m.data[nextIndex]] != value {
		m.values[m.data[nextIndex]] = value
		return true
	}
	return false
}

// Remove removes the entry for key.  It returns true if the map
// changed.  The index of any surviving key reported by Key may
// differ before and after a Remove that changes the map.
func (m *IntIntMap) Remove(key int) bool {
	prevIndex := m.prevIndex(key)
	index := m.next[prevIndex]
	if index == nilIndex || m.keys[m.data[index]] != key {
		return false
	}
	oldListIndex := m.data[index]
	m.next[prevIndex] = m.next[index]
	m.next[index] = m.firstFree
	m.firstFree = index

	m.size--
	if oldListIndex != m.size {
		// relocate the last dense entry into the freed slot
		index = m.indexOf(m.keys[m.size])
		m.data[index] = oldListIndex
		m.keys[oldListIndex] = m.keys[m.size]
		m.values[oldListIndex] = m.values[m.size]
	}
	return true
}

// bucket maps key to a bucket with a 32-bit wraparound multiply
// followed by the absolute value of the modulo, matching the
// original hash across the full key range.
func (m *IntIntMap) bucket(key int) int {
	b := int(71*int32(key)) % m.nBuckets
	if b < 0 {
		return -b
	}
	return b
}

// prevIndex returns the chain node (or bucket head) immediately
// preceding key's sorted position in its bucket chain.
func (m *IntIntMap) prevIndex(key int) int {
	prevIndex := m.bucket(key)
	index := m.next[prevIndex]
	for index != nilIndex && m.keys[m.data[index]] < key {
		prevIndex = index
		index = m.next[index]
	}
	return prevIndex
}

// Key returns the key stored at the specified dense index.  It
// panics if index < 0 || index >= Size().
func (m *IntIntMap) Key(index int) int {
	if index < 0 || index >= m.size {
		panic(fmt.Sprintf("ints: index %d out of range [0, %d)", index, m.size))
	}
	return m.keys[index]
}

// Get returns the value for key, or sentinel if key is absent.
func (m *IntIntMap) Get(key, sentinel int) int {
	index := m.indexOf(key)
	if index == -1 {
		return sentinel
	}
	return m.values[m.data[index]]
}

// Size returns the number of keys in the map.
func (m *IntIntMap) Size() int {
	return m.size
}

// Keys returns a copy of the keys.  The returned slice satisfies
// Keys()[j] == Key(j) for 0 <= j < Size().
func (m *IntIntMap) Keys() []int {
	return append([]int(nil), m.keys[:m.size]...)
}

// Values returns a copy of the values.  The returned slice satisfies
// Values()[j] == Get(Key(j), sentinel) for 0 <= j < Size().
func (m *IntIntMap) Values() []int {
	return append([]int(nil), m.values[:m.size]...)
}

func (m *IntIntMap) String() string {
	return fmt.Sprintf("%v", m.Keys())
}
