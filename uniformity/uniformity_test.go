package uniformity

import (
	"testing"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/fisheryates"
	"github.com/jsign/permutations/prng"
	"github.com/stretchr/testify/require"
)

// Bonferroni-corrected over every position of every generator tested.
const alpha = 1e-6

func TestSwapShuffleUniform(t *testing.T) {
	t.Parallel()

	const n, trials = 100, 10_000

	sources := []struct {
		name string
		src  prng.Float
	}{
		{"mulberry32", prng.NewMulberry32(20240601)},
		{"xorshift128", prng.Unit(prng.NewXorshift128FromSeed(20240601))},
	}
	for _, s := range sources {
		s := s
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			counts, err := PositionCounts(n, trials, func() ([]uint32, error) {
				return fisheryates.Permute(common.Allocator{}, n, s.src)
			})
			require.NoError(t, err)

			results, err := ChiSquare(counts)
			require.NoError(t, err)
			require.Len(t, results, n)
			worst := MinPValue(results)
			require.Greater(t, worst.PValue, alpha, "position %d: chi2=%.1f", worst.Position, worst.Stat)
		})
	}
}

func TestChiSquareDetectsBias(t *testing.T) {
	t.Parallel()

	// The identity "permutation" puts every value in the same place.
	counts, err := PositionCounts(10, 1000, func() ([]uint32, error) {
		return []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil
	})
	require.NoError(t, err)

	results, err := ChiSquare(counts)
	require.NoError(t, err)
	for _, r := range results {
		require.Equal(t, 9, r.DF)
		require.Less(t, r.PValue, alpha)
	}
}

func TestChiSquarePerfectlyEven(t *testing.T) {
	t.Parallel()

	results, err := ChiSquare([][]uint64{{5, 5, 5, 5}})
	require.NoError(t, err)
	require.Equal(t, 0.0, results[0].Stat)
	require.InDelta(t, 1.0, results[0].PValue, 1e-12)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := PositionCounts(1, 10, nil)
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, err = PositionCounts(3, 1, func() ([]uint32, error) { return []uint32{1, 2}, nil })
	require.Error(t, err)

	_, err = PositionCounts(3, 1, func() ([]uint32, error) { return []uint32{1, 2, 4}, nil })
	require.Error(t, err)

	_, err = ChiSquare([][]uint64{{0, 0}})
	require.ErrorIs(t, err, ErrNotEnoughData)
}
