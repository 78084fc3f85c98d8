package common

import "errors"

var (
	ErrInvalidSize      = errors.New("invalid size")
	ErrAllocationFailed = errors.New("allocation failed")
)
