// Package fisheryates implements the in-place swap shuffle, the fastest of
// the permutation strategies.
package fisheryates

import (
	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/prng"
	"github.com/jsign/permutations/sequence"
)

// Shuffle permutes buf in place with one backward pass and returns the number
// of swaps performed. Every ordering is equally likely provided src is
// uniform on [0,1).
func Shuffle(buf []uint32, src prng.Float) int {
	swaps := 0
	for i := len(buf) - 1; i > 0; i-- {
		j := int(src.Next() * float64(i+1))
		buf[i], buf[j] = buf[j], buf[i]
		swaps++
	}
	return swaps
}

// Permute returns a random permutation of 1..n.
func Permute(a common.Allocator, n int, src prng.Float) ([]uint32, error) {
	buf, err := sequence.Ascending(a, n)
	if err != nil {
		return nil, err
	}
	Shuffle(buf, src)
	return buf, nil
}
