package ints

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntIntMapBasic(t *testing.T) {
	m := NewIntIntMap(8)
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Contains(3))
	assert.Equal(t, -1, m.Get(3, -1))

	assert.True(t, m.Put(3, 30))
	assert.True(t, m.Contains(3))
	assert.Equal(t, 30, m.Get(3, -1))
	assert.Equal(t, 1, m.Size())

	// identical re-insert is a no-op
	assert.False(t, m.Put(3, 30))
	// overwrite changes the map
	assert.True(t, m.Put(3, 31))
	assert.Equal(t, 31, m.Get(3, -1))
	assert.Equal(t, 1, m.Size())

	assert.True(t, m.Remove(3))
	assert.False(t, m.Remove(3))
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, -1, m.Get(3, -1))
}

// The growth scenario: capacity 4, five inserts trigger one growth,
// then a removal compacts the dense arrays.
func TestIntIntMapGrowth(t *testing.T) {
	m := NewIntIntMap(4)
	for k := 0; k <= 4; k++ {
		require.True(t, m.Put(k, 10+k))
	}
	assert.Equal(t, 5, m.Size())

	assert.True(t, m.Remove(1))
	assert.Equal(t, 14, m.Get(4, -1))
	assert.Equal(t, 4, m.Size())

	keys := m.Keys()
	sort.Ints(keys)
	assert.Equal(t, []int{0, 2, 3, 4}, keys)
}

func TestIntIntMapCapacityValidation(t *testing.T) {
	assert.Panics(t, func() { NewIntIntMap(0) })
	assert.Panics(t, func() { NewIntIntMap(-1) })
	assert.Panics(t, func() { NewIntIntMap(MaxCapacity + 1) })
	assert.NotPanics(t, func() { NewIntIntMap(1) })
}

func TestIntIntMapKeyIndex(t *testing.T) {
	m := NewIntIntMap(4)
	m.Put(7, 70)
	m.Put(9, 90)
	keys := m.Keys()
	values := m.Values()
	for j := 0; j < m.Size(); j++ {
		assert.Equal(t, keys[j], m.Key(j))
		assert.Equal(t, values[j], m.Get(keys[j], -1))
	}
	assert.Panics(t, func() { m.Key(2) })
	assert.Panics(t, func() { m.Key(-1) })
}

func TestIntIntMapClear(t *testing.T) {
	m := NewIntIntMap(4)
	for k := 0; k < 10; k++ {
		m.Put(k, k)
	}
	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Keys())
	for k := 0; k < 10; k++ {
		assert.False(t, m.Contains(k))
	}
	// the map stays usable after clearing
	m.Put(42, 7)
	assert.Equal(t, 7, m.Get(42, -1))
	assert.Equal(t, "[42]", m.String())
}

// checkDense verifies the compaction invariant: the dense prefix
// holds exactly the live set with no gaps or duplicates, and every
// surviving key's value is reachable both by lookup and by position.
func checkDense(t *testing.T, m *IntIntMap, ref map[int]int) {
	t.Helper()
	require.Equal(t, len(ref), m.Size())
	keys := m.Keys()
	values := m.Values()
	require.Len(t, keys, len(ref))
	seen := make(map[int]bool, len(keys))
	for j, k := range keys {
		require.False(t, seen[k], "duplicate key %d in dense prefix", k)
		seen[k] = true
		want, ok := ref[k]
		require.True(t, ok, "stale key %d", k)
		require.Equal(t, want, values[j])
		require.Equal(t, want, m.Get(k, math.MinInt32))
	}
}

func TestIntIntMapCompaction(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := NewIntIntMap(4)
	ref := map[int]int{}
	for k := 0; k < 100; k++ {
		v := r.Intn(1000)
		m.Put(k, v)
		ref[k] = v
	}
	for _, k := range r.Perm(100)[:60] {
		m.Remove(k)
		delete(ref, k)
		checkDense(t, m, ref)
	}
}

// Randomized equivalence against the built-in map, mirroring the
// operation mix of the original self-test.
func TestIntIntMapModel(t *testing.T) {
	m := NewIntIntMap(4)
	ref := map[int]int{}
	r := rand.New(rand.NewSource(0))
	const nTests = 5000
	const maxKey = 100
	for j := 0; j < nTests; j++ {
		key := j % maxKey
		value := r.Int()
		switch d := r.Float64(); {
		case d < 0.005:
			m.Clear()
			ref = map[int]int{}
		case d < 0.4:
			got := m.Get(key, -1)
			want, ok := ref[key]
			if !ok {
				want = -1
			}
			require.Equal(t, want, got, "step %d", j)
		case d < 0.7:
			_, had := ref[key]
			changed := m.Put(key, value)
			require.Equal(t, !had || ref[key] != value, changed, "step %d", j)
			ref[key] = value
		default:
			_, had := ref[key]
			require.Equal(t, had, m.Remove(key), "step %d", j)
			delete(ref, key)
		}
		require.Equal(t, len(ref), m.Size(), "step %d", j)
	}
	checkDense(t, m, ref)
}

// The fixed multiplicative bucket hash should spread uniform random
// keys about as well as a strong byte hash over the same bucket
// count.
func TestBucketDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	const n = 10000
	m := NewIntIntMap(n + 1) // headroom so no growth changes the bucket count
	nb := m.nBuckets
	murmurChains := make([]int, nb)
	var kb [8]byte
	for j := 0; j < n; j++ {
		key := r.Intn(1 << 30)
		m.Put(key, j)
		binary.LittleEndian.PutUint64(kb[:], uint64(key))
		murmurChains[murmur3.Sum64(kb[:])%uint64(nb)]++
	}

	maxChain := 0
	for b := 0; b < nb; b++ {
		length := 0
		for i := m.next[b]; i != nilIndex; i = m.next[i] {
			length++
		}
		if length > maxChain {
			maxChain = length
		}
	}
	maxMurmur := 0
	for _, c := range murmurChains {
		if c > maxMurmur {
			maxMurmur = c
		}
	}
	assert.LessOrEqual(t, maxChain, 4*maxMurmur,
		"71*key bucketing degenerated: max chain %d vs murmur3 %d", maxChain, maxMurmur)
}

func BenchmarkIntIntMapGet(b *testing.B) {
	r := rand.New(rand.NewSource(77))
	const n = 1 << 16
	m := NewIntIntMap(n)
	keys := make([]int, n)
	for j := range keys {
		keys[j] = r.Int()
		m.Put(keys[j], j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i%n], -1)
	}
}

func BenchmarkGoMapGet(b *testing.B) {
	r := rand.New(rand.NewSource(77))
	const n = 1 << 16
	m := make(map[int]int, n)
	keys := make([]int, n)
	for j := range keys {
		keys[j] = r.Int()
		m[keys[j]] = j
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%n]]
	}
}

func BenchmarkBloomFilterContains(b *testing.B) {
	r := rand.New(rand.NewSource(77))
	const n = 1 << 16
	bf := bloom.NewWithEstimates(n, 0.0001)
	keys := make([][]byte, n)
	for j := range keys {
		kb := make([]byte, 8)
		binary.LittleEndian.PutUint64(kb, uint64(r.Int()))
		keys[j] = kb
		bf.Add(kb)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.Test(keys[i%n])
	}
}
