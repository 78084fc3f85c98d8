package prng

// Mulberry32 is a one-word generator: fast, small, and statistically weak.
// All arithmetic is uint32 and wraps modulo 2^32; widening any intermediate
// changes the output sequence.
type Mulberry32 struct {
	state uint32
}

func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 advances the state and returns the raw mixed word.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Next returns a value in [0,1).
func (m *Mulberry32) Next() float64 {
	return float64(m.Uint32()) / twoTo32
}
