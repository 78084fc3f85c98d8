// Package sequence allocates and fills the buffers the permutation strategies
// work on. Every builder validates its size before it allocates.
package sequence

import (
	"fmt"
	"math"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/prng"
)

// Ascending returns [1, 2, ..., n].
func Ascending(a common.Allocator, n int) ([]uint32, error) {
	buf, err := alloc[uint32](a, n)
	if err != nil {
		return nil, err
	}
	for i := range buf {
		buf[i] = uint32(i + 1)
	}
	return buf, nil
}

// AscendingMapped builds the same buffer as Ascending through a per-element
// generator. It's kept only to compare against the single-pass fill.
func AscendingMapped(a common.Allocator, n int) ([]uint32, error) {
	buf, err := alloc[uint32](a, n)
	if err != nil {
		return nil, err
	}
	fill(buf, func(i int) uint32 { return uint32(i + 1) })
	return buf, nil
}

func fill(buf []uint32, gen func(int) uint32) {
	for i := range buf {
		buf[i] = gen(i)
	}
}

// Pair ties a 1-based index to the random key it'll be sorted by.
type Pair struct {
	Index uint32
	Key   float64
}

// KeyPairs draws one key per index 1..n.
func KeyPairs(a common.Allocator, n int, src prng.Float) ([]Pair, error) {
	pairs, err := alloc[Pair](a, n)
	if err != nil {
		return nil, err
	}
	for i := range pairs {
		pairs[i] = Pair{Index: uint32(i + 1), Key: src.Next()}
	}
	return pairs, nil
}

// Buckets returns k*n empty slots.
func Buckets(a common.Allocator, n, k int) ([]Slot, error) {
	if err := common.ValidateSize(n); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: bucket factor %d is less than 1", common.ErrInvalidSize, k)
	}
	if uint64(k) > math.MaxUint64/uint64(n) {
		return nil, fmt.Errorf("%w: %d buckets per value overflows", common.ErrAllocationFailed, k)
	}
	m := uint64(n) * uint64(k)
	slots, err := common.Make[Slot](a, m)
	if err != nil {
		return nil, fmt.Errorf("allocating %d slots: %w", m, err)
	}
	return slots, nil
}

func alloc[T any](a common.Allocator, n int) ([]T, error) {
	if err := common.ValidateSize(n); err != nil {
		return nil, err
	}
	buf, err := common.Make[T](a, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("allocating %d values: %w", n, err)
	}
	return buf, nil
}
