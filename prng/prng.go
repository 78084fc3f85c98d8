// Package prng holds the pseudo-random sources the permutation strategies draw
// from. None of them are suitable for cryptographic use.
//
// Sources are plain state machines: they never fail, never allocate on a
// draw, and are not safe for concurrent use. A source must have one owner at
// a time.
package prng

import "time"

// Float produces values in [0,1).
type Float interface {
	Next() float64
}

// Uint32 produces raw 32-bit values. Callers needing a bounded index must
// scale explicitly, usually through Unit.
type Uint32 interface {
	Next() uint32
}

const twoTo32 = 1 << 32

// Normalized adapts a raw 32-bit source into a Float source.
type Normalized struct {
	Source Uint32
}

func Unit(src Uint32) Normalized {
	return Normalized{Source: src}
}

func (n Normalized) Next() float64 {
	return float64(n.Source.Next()) / twoTo32
}

var global = NewMulberry32(TimeSeed())

// Default returns the process-wide source. It is seeded once at start-up and
// can't be re-seeded; every caller shares, and advances, the same sequence.
func Default() *Mulberry32 {
	return global
}

// TimeSeed is the coarse time-based seed used for default seeding.
func TimeSeed() uint32 {
	return uint32(time.Now().UnixNano() / int64(time.Millisecond))
}

// DrainFloat draws n values and returns the last one.
func DrainFloat(src Float, n int) float64 {
	var v float64
	for i := 0; i < n; i++ {
		v = src.Next()
	}
	return v
}

// DrainUint32 draws n values and returns the last one.
func DrainUint32(src Uint32, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = src.Next()
	}
	return v
}
