package prng

import (
	gprng "gonum.org/v1/gonum/mathext/prng"
)

// MT19937 exposes gonum's 64-bit Mersenne Twister as a 32-bit source.
type MT19937 struct {
	src *gprng.MT19937
}

func NewMT19937(seed uint64) *MT19937 {
	src := gprng.NewMT19937()
	src.Seed(seed)
	return &MT19937{src: src}
}

func (m *MT19937) Next() uint32 {
	return uint32(m.src.Uint64() >> 32)
}
