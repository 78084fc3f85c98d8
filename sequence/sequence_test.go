package sequence

import (
	"testing"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/prng"
	"github.com/stretchr/testify/require"
)

func TestAscending(t *testing.T) {
	t.Parallel()

	builders := []struct {
		name  string
		build func(common.Allocator, int) ([]uint32, error)
	}{
		{"single pass", Ascending},
		{"mapped", AscendingMapped},
	}
	for _, b := range builders {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()

			buf, err := b.build(common.Allocator{}, 1)
			require.NoError(t, err)
			require.Equal(t, []uint32{1}, buf)

			buf, err = b.build(common.Allocator{}, 6)
			require.NoError(t, err)
			require.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, buf)
		})
	}
}

func TestInvalidSizeBeforeAllocation(t *testing.T) {
	t.Parallel()

	var reserved int
	a := common.Allocator{OnReserve: func(uint64, uint64) { reserved++ }}

	for _, n := range []int{0, -5} {
		_, err := Ascending(a, n)
		require.ErrorIs(t, err, common.ErrInvalidSize)
		_, err = AscendingMapped(a, n)
		require.ErrorIs(t, err, common.ErrInvalidSize)
		_, err = KeyPairs(a, n, prng.NewMulberry32(1))
		require.ErrorIs(t, err, common.ErrInvalidSize)
		_, err = Buckets(a, n, 2)
		require.ErrorIs(t, err, common.ErrInvalidSize)
	}
	_, err := Buckets(a, 10, 0)
	require.ErrorIs(t, err, common.ErrInvalidSize)

	require.Zero(t, reserved)
}

func TestKeyPairs(t *testing.T) {
	t.Parallel()

	pairs, err := KeyPairs(common.Allocator{}, 100, prng.NewMulberry32(3))
	require.NoError(t, err)
	require.Len(t, pairs, 100)

	ref := prng.NewMulberry32(3)
	for i, p := range pairs {
		require.Equal(t, uint32(i+1), p.Index)
		require.Equal(t, ref.Next(), p.Key)
	}
}

func TestBuckets(t *testing.T) {
	t.Parallel()

	slots, err := Buckets(common.Allocator{}, 10, 3)
	require.NoError(t, err)
	require.Len(t, slots, 30)
	for i := range slots {
		require.Equal(t, Empty, slots[i].Kind())
	}

	_, err = Buckets(common.Allocator{Limit: 10 * 32}, 10, 3)
	require.ErrorIs(t, err, common.ErrAllocationFailed)
}

func TestSlot(t *testing.T) {
	t.Parallel()

	var s Slot
	require.Equal(t, Empty, s.Kind())

	s.Add(7)
	require.Equal(t, One, s.Kind())
	require.Equal(t, uint32(7), s.Single())

	s.Add(3)
	require.Equal(t, Many, s.Kind())
	require.Equal(t, []uint32{7, 3}, s.List())

	s.Add(9)
	require.Equal(t, []uint32{7, 3, 9}, s.List())

	s.Reset()
	require.Equal(t, Empty, s.Kind())
	require.Nil(t, s.List())
}

func BenchmarkAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Ascending(common.Allocator{}, 1<<20)
	}
}

func BenchmarkAscendingMapped(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = AscendingMapped(common.Allocator{}, 1<<20)
	}
}
