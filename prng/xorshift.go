package prng

// Marsaglia's reference state, used in place of the degenerate all-zero one.
const (
	xorshiftX = 123456789
	xorshiftY = 362436069
	xorshiftZ = 521288629
	xorshiftW = 88675123
)

// Xorshift128 is Marsaglia's four-word xorshift generator. Next returns the
// raw 32-bit output.
type Xorshift128 struct {
	x, y, z, w uint32
}

func NewXorshift128(x, y, z, w uint32) *Xorshift128 {
	if x|y|z|w == 0 {
		x, y, z, w = xorshiftX, xorshiftY, xorshiftZ, xorshiftW
	}
	return &Xorshift128{x: x, y: y, z: z, w: w}
}

// NewXorshift128FromSeed expands a single word into the four-word state with
// mulberry32.
func NewXorshift128FromSeed(seed uint32) *Xorshift128 {
	m := NewMulberry32(seed)
	return NewXorshift128(m.Uint32(), m.Uint32(), m.Uint32(), m.Uint32())
}

func (s *Xorshift128) Next() uint32 {
	t := s.x ^ s.x<<11
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ s.w>>19 ^ (t ^ t>>8)
	return s.w
}
