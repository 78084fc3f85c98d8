package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShake(t *testing.T) {
	t.Parallel()

	a, err := NewShake(0)
	require.NoError(t, err)
	b, err := NewShake(0)
	require.NoError(t, err)
	c, err := NewShake(1)
	require.NoError(t, err)

	var differ bool
	// Cross several buffer refills.
	for i := 0; i < 3*shakeBufSize; i++ {
		va := a.Next()
		require.Equal(t, va, b.Next())
		differ = differ || va != c.Next()
	}
	require.True(t, differ)
}
