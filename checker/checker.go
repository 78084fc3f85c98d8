// Package checker verifies that a produced buffer is a permutation of 1..N.
//
// A failed check means a strategy produced the wrong multiset of values.
// That's a bug rather than a runtime condition, so nothing here retries.
package checker

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

var ErrIntegrity = errors.New("permutation integrity failure")

// Verify checks that candidate, once sorted, equals reference element-wise.
// The candidate is left untouched.
func Verify(candidate, reference []uint32) error {
	if len(candidate) != len(reference) {
		return fmt.Errorf("%w: length %d, expected %d", ErrIntegrity, len(candidate), len(reference))
	}
	sorted := append([]uint32(nil), candidate...)
	slices.Sort(sorted)
	for i := range sorted {
		if sorted[i] != reference[i] {
			return fmt.Errorf("%w: sorted position %d holds %d, expected %d", ErrIntegrity, i, sorted[i], reference[i])
		}
	}
	return nil
}

// VerifyBijection checks in one pass that every value of 1..len(candidate)
// appears exactly once.
func VerifyBijection(candidate []uint32) error {
	n := uint(len(candidate))
	seen := bitset.New(n + 1)
	for i, v := range candidate {
		if v == 0 || uint(v) > n {
			return fmt.Errorf("%w: value %d at position %d is outside [1,%d]", ErrIntegrity, v, i, n)
		}
		if seen.Test(uint(v)) {
			return fmt.Errorf("%w: value %d repeated at position %d", ErrIntegrity, v, i)
		}
		seen.Set(uint(v))
	}
	return nil
}
