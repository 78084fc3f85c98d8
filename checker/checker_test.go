package checker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type checkCase struct {
	name      string
	candidate []uint32
	valid     bool
}

var cases = []checkCase{
	{"singleton", []uint32{1}, true},
	{"identity", []uint32{1, 2, 3, 4, 5}, true},
	{"reversed", []uint32{5, 4, 3, 2, 1}, true},
	{"shuffled", []uint32{3, 8, 2, 1, 7, 6, 4, 5}, true},
	{"duplicate", []uint32{1, 2, 2, 4}, false},
	{"omission", []uint32{1, 2, 3, 5}, false},
	{"zero", []uint32{0, 1, 2}, false},
	{"same sum", []uint32{1, 1, 4, 4}, false},
}

func ascending(n int) []uint32 {
	ret := make([]uint32, n)
	for i := range ret {
		ret[i] = uint32(i + 1)
	}
	return ret
}

func TestVerify(t *testing.T) {
	t.Parallel()

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			before := append([]uint32(nil), c.candidate...)
			err := Verify(c.candidate, ascending(len(c.candidate)))
			if c.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrIntegrity)
			}
			require.Equal(t, before, c.candidate)
		})
	}

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, Verify([]uint32{1, 2}, ascending(3)), ErrIntegrity)
	})
}

func TestVerifyBijection(t *testing.T) {
	t.Parallel()

	for _, c := range cases {
		err := VerifyBijection(c.candidate)
		if c.valid {
			require.NoError(t, err, c.name)
		} else {
			require.ErrorIs(t, err, ErrIntegrity, c.name)
		}
	}
	require.ErrorIs(t, VerifyBijection([]uint32{1, 2, 4}), ErrIntegrity)
}

func TestVerifyFingerprint(t *testing.T) {
	t.Parallel()

	for _, c := range cases {
		err := VerifyFingerprint(c.candidate)
		if c.valid {
			require.NoError(t, err, c.name)
		} else {
			require.ErrorIs(t, err, ErrIntegrity, c.name)
		}
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	t.Parallel()

	alpha := Challenge([]uint32{1, 2, 3})
	a := Fingerprint(alpha, []uint32{1, 2, 3, 4})
	b := Fingerprint(alpha, []uint32{4, 2, 1, 3})
	want := rangeFingerprint(alpha, 4)
	require.True(t, a.Equal(&b))
	require.True(t, a.Equal(&want))
}
