// Package permutations generates uniformly random permutations of 1..N with
// interchangeable strategies and measures how fast each one is.
package permutations

import (
	"errors"
	"fmt"

	"github.com/jsign/permutations/bucket"
	"github.com/jsign/permutations/checker"
	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/fisheryates"
	"github.com/jsign/permutations/keysort"
	"github.com/jsign/permutations/prng"
	"github.com/jsign/permutations/sequence"
)

type Strategy string

const (
	SwapShuffle        Strategy = "swap-shuffle"
	KeySort            Strategy = "key-sort"
	BucketDistribution Strategy = "bucket"
)

const defaultBucketFactor = 2

var ErrUnknownStrategy = errors.New("unknown strategy")

func Strategies() []Strategy {
	return []Strategy{SwapShuffle, KeySort, BucketDistribution}
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

type Config struct {
	// Source feeds every draw. Nil means the process-wide default, which must
	// not be shared by concurrent generations.
	Source prng.Float
	// BucketFactor is k in M = k*N bucket slots. Zero means 2.
	BucketFactor int
	// MemoryLimit caps any single buffer, in bytes. Zero means no cap.
	MemoryLimit uint64
	// ShuffleCollisions removes the bucket strategy's collision-order bias.
	ShuffleCollisions bool
}

func DefaultConfig() Config {
	return Config{
		Source:       prng.Default(),
		BucketFactor: defaultBucketFactor,
	}
}

func (c Config) source() prng.Float {
	if c.Source == nil {
		return prng.Default()
	}
	return c.Source
}

func (c Config) bucketFactor() int {
	if c.BucketFactor == 0 {
		return defaultBucketFactor
	}
	return c.BucketFactor
}

func (c Config) allocator() common.Allocator {
	return common.Allocator{Limit: c.MemoryLimit}
}

// Prepare validates n and s and returns the generation as deferred work.
// Nothing is allocated until the returned function runs.
func Prepare(n int, s Strategy, cfg Config) (func() ([]uint32, error), error) {
	if err := common.ValidateSize(n); err != nil {
		return nil, err
	}
	a, src := cfg.allocator(), cfg.source()

	switch s {
	case SwapShuffle:
		return func() ([]uint32, error) {
			return fisheryates.Permute(a, n, src)
		}, nil
	case KeySort:
		return func() ([]uint32, error) {
			return keysort.Permute(a, n, src)
		}, nil
	case BucketDistribution:
		k := cfg.bucketFactor()
		if k < 1 {
			return nil, fmt.Errorf("%w: bucket factor %d is less than 1", common.ErrInvalidSize, k)
		}
		opts := bucket.Options{ShuffleCollisions: cfg.ShuffleCollisions}
		return func() ([]uint32, error) {
			return bucket.Permute(a, n, k, src, opts)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Generate returns a random permutation of 1..n produced by s.
func Generate(n int, s Strategy, cfg Config) ([]uint32, error) {
	run, err := Prepare(n, s, cfg)
	if err != nil {
		return nil, err
	}
	perm, err := run()
	if err != nil {
		return nil, fmt.Errorf("generating with %s: %w", s, err)
	}
	return perm, nil
}

// Check verifies perm against an independently built 1..len(perm).
func Check(perm []uint32) error {
	ref, err := sequence.Ascending(common.Allocator{}, len(perm))
	if err != nil {
		return fmt.Errorf("building reference: %w", err)
	}
	return checker.Verify(perm, ref)
}

// Apply reorders values so that position i holds values[perm[i]-1].
func Apply[T any](values []T, perm []uint32) ([]T, error) {
	if len(values) != len(perm) {
		return nil, fmt.Errorf("%d values, permutation of %d", len(values), len(perm))
	}
	if err := checker.VerifyBijection(perm); err != nil {
		return nil, err
	}
	return common.Permute(values, perm), nil
}

// ParseSize converts an untyped numeric size, rejecting anything that isn't a
// positive integer.
func ParseSize(v float64) (int, error) {
	return common.ParseSize(v)
}
