package common

import (
	"fmt"
	"math"
)

// MaxSize is the largest permutation the engine represents, since values are
// stored as uint32.
const MaxSize = math.MaxUint32

func ValidateSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d is not positive", ErrInvalidSize, n)
	}
	if uint64(n) > MaxSize {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidSize, n, uint64(MaxSize))
	}
	return nil
}

// ParseSize accepts a size coming from an untyped numeric source and rejects
// anything that isn't a positive integer representable as a buffer length.
func ParseSize(v float64) (int, error) {
	switch {
	case math.IsNaN(v):
		return 0, fmt.Errorf("%w: not a number", ErrInvalidSize)
	case math.IsInf(v, 0):
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidSize, v)
	case v != math.Trunc(v):
		return 0, fmt.Errorf("%w: %v is not integral", ErrInvalidSize, v)
	case v < 1:
		return 0, fmt.Errorf("%w: %v is not positive", ErrInvalidSize, v)
	case v > MaxSize || v > float64(math.MaxInt):
		return 0, fmt.Errorf("%w: %v is too large", ErrInvalidSize, v)
	}
	return int(v), nil
}
