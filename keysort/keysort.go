// Package keysort permutes by attaching a random key to every index and
// sorting on it. It pays for N draws, N pairs and an O(N log N) sort, so it
// is strictly slower than the swap shuffle and is kept for comparison.
package keysort

import (
	"fmt"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/prng"
	"github.com/jsign/permutations/sequence"
	"golang.org/x/exp/slices"
)

func Permute(a common.Allocator, n int, src prng.Float) ([]uint32, error) {
	pairs, err := sequence.KeyPairs(a, n, src)
	if err != nil {
		return nil, err
	}
	out, err := common.Make[uint32](a, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("allocating output: %w", err)
	}

	Sort(pairs)
	for i := range pairs {
		out[i] = pairs[i].Index
	}
	return out, nil
}

// Sort orders pairs ascending by key. Equal keys keep their index order.
func Sort(pairs []sequence.Pair) {
	slices.SortStableFunc(pairs, func(a, b sequence.Pair) bool {
		return a.Key < b.Key
	})
}
