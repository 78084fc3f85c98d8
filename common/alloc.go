package common

import (
	"fmt"
	"math"
	"unsafe"
)

// Allocator guards the large buffers the strategies need. Every allocation is
// first reserved, so oversized requests fail with ErrAllocationFailed instead
// of reaching the runtime.
//
// A runtime out-of-memory abort can't be intercepted; requests that pass the
// reservation but still exceed what the process can map remain fatal.
type Allocator struct {
	// Limit caps a single reservation in bytes. Zero means no cap.
	Limit uint64
	// OnReserve observes each reservation before it's checked.
	OnReserve func(count, elemSize uint64)
}

func (a Allocator) Reserve(count, elemSize uint64) error {
	if a.OnReserve != nil {
		a.OnReserve(count, elemSize)
	}
	if elemSize != 0 && count > math.MaxUint64/elemSize {
		return fmt.Errorf("%w: %d elements of %d bytes overflows", ErrAllocationFailed, count, elemSize)
	}
	bytes := count * elemSize
	if a.Limit != 0 && bytes > a.Limit {
		return fmt.Errorf("%w: %d bytes requested, limit is %d", ErrAllocationFailed, bytes, a.Limit)
	}
	return nil
}

// Make reserves and allocates a zeroed slice of count elements.
func Make[T any](a Allocator, count uint64) (s []T, err error) {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	if err := a.Reserve(count, elemSize); err != nil {
		return nil, err
	}
	if count > math.MaxInt {
		return nil, fmt.Errorf("%w: %d elements exceeds addressable length", ErrAllocationFailed, count)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %d elements of %d bytes: %v", ErrAllocationFailed, count, elemSize, r)
		}
	}()
	return make([]T, count), nil
}
