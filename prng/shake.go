package prng

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Shake is a seeded SHAKE256 stream read four bytes at a time. It is slower
// than the arithmetic generators but its output is reproducible from a single
// 64-bit seed.
type Shake struct {
	xof sha3.ShakeHash
	buf [shakeBufSize]byte
	pos int
}

const shakeBufSize = 544 // four SHAKE256 blocks

func NewShake(seed uint64) (*Shake, error) {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], seed)

	xof := sha3.NewShake256()
	if _, err := xof.Write(seedBytes[:]); err != nil {
		return nil, fmt.Errorf("writing seed: %s", err)
	}
	return &Shake{xof: xof, pos: shakeBufSize}, nil
}

func (s *Shake) Next() uint32 {
	if s.pos == shakeBufSize {
		// Reading from a ShakeHash never fails.
		_, _ = s.xof.Read(s.buf[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint32(s.buf[s.pos:])
	s.pos += 4
	return v
}
