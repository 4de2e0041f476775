package main

import (
	"fmt"

	ints "github.com/variantkit/go-ints"
)

func main() {
	// allele indexes at a biallelic site: two distinct values, so the
	// factory packs eight of them into each byte
	alleles := []int{0, 1, 1, 0, 0, 0, 1, 0, 1, 1}
	valueSize := ints.ValueSizeOf(alleles)
	seq := ints.NewIndexArray(alleles, valueSize)
	fmt.Printf("%d alleles, value size %d, stored as %T\n",
		seq.Size(), seq.ValueSize(), seq.IntArray())
	fmt.Println(ints.AsString(seq))

	// compact a sparse id space onto dense indices
	m := ints.NewIntIntMap(4)
	for _, id := range []int{900, 17, 900, 42, 17, 7} {
		if !m.Contains(id) {
			m.Put(id, m.Size())
		}
	}
	fmt.Printf("%d distinct ids\n", m.Size())
	for j := 0; j < m.Size(); j++ {
		id := m.Key(j)
		fmt.Printf("  id %d -> index %d\n", id, m.Get(id, -1))
	}
}
