// Package bucket permutes by scattering indices into an oversized slot array
// at random positions and reading the slots back in order.
//
// Indices that collide into the same slot are emitted in the order they were
// distributed, which is ascending. That makes the output measurably
// non-uniform: not every arrangement of a colliding subset is reachable. The
// bias shrinks as the bucket factor k grows, at the price of an O(k*N) scan.
// Options.ShuffleCollisions removes it.
package bucket

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/fisheryates"
	"github.com/jsign/permutations/prng"
	"github.com/jsign/permutations/sequence"
)

var ErrSlotsNotEmpty = errors.New("bucket slots not empty")

type Options struct {
	// ShuffleCollisions shuffles each collision list before it's emitted.
	// This deviates from the plain bucket distribution and is off by default.
	ShuffleCollisions bool
}

// Permute allocates k*n slots and distributes 1..n into them.
func Permute(a common.Allocator, n, k int, src prng.Float, opts Options) ([]uint32, error) {
	slots, err := sequence.Buckets(a, n, k)
	if err != nil {
		return nil, err
	}
	return Distribute(a, n, src, slots, opts)
}

// Distribute permutes 1..n using caller-owned slots, which must all be empty
// and number at least n. The slots are never resized and are left empty on
// return so they can be reused.
func Distribute(a common.Allocator, n int, src prng.Float, slots []sequence.Slot, opts Options) ([]uint32, error) {
	if err := common.ValidateSize(n); err != nil {
		return nil, err
	}
	if len(slots) < n {
		return nil, fmt.Errorf("%w: %d slots can't hold %d values", common.ErrInvalidSize, len(slots), n)
	}
	if uint64(len(slots)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d slots exceeds %d", common.ErrInvalidSize, len(slots), uint64(math.MaxUint32))
	}
	out, err := common.Make[uint32](a, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("allocating output: %w", err)
	}

	m := float64(len(slots))
	for i := 1; i <= n; i++ {
		r := int(src.Next() * m)
		slots[r].Add(uint32(i))
	}

	pos := 0
	for i := range slots {
		s := &slots[i]
		switch s.Kind() {
		case sequence.Empty:
			continue
		case sequence.One:
			if pos == n {
				return nil, ErrSlotsNotEmpty
			}
			out[pos] = s.Single()
			pos++
		case sequence.Many:
			list := s.List()
			if pos+len(list) > n {
				return nil, ErrSlotsNotEmpty
			}
			if opts.ShuffleCollisions {
				fisheryates.Shuffle(list, src)
			}
			pos += copy(out[pos:], list)
		}
		s.Reset()
	}
	return out, nil
}
