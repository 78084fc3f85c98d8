package transcript

import (
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	transcript "github.com/jsign/merlin"
)

// chunkLen bounds how many values go into a single transcript message.
const chunkLen = 4096

type Transcript struct {
	inner *transcript.Transcript
}

func New(label []byte) *Transcript {
	return &Transcript{
		inner: transcript.New(label),
	}
}

func (t *Transcript) appendMessage(label []byte, message []byte) {
	t.inner.AppendMessage(label, message)
}

func (t *Transcript) AppendUint64(label []byte, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	t.appendMessage(label, b[:])
}

// AppendUint32s absorbs values in fixed-size little-endian chunks, so two
// transcripts agree only if they saw the same values in the same order.
func (t *Transcript) AppendUint32s(label []byte, values []uint32) {
	t.AppendUint64(label, uint64(len(values)))
	buf := make([]byte, 4*chunkLen)
	for len(values) > 0 {
		n := len(values)
		if n > chunkLen {
			n = chunkLen
		}
		for i, v := range values[:n] {
			binary.LittleEndian.PutUint32(buf[4*i:], v)
		}
		t.appendMessage(label, buf[:4*n])
		values = values[n:]
	}
}

func (t *Transcript) AppendScalars(label []byte, scalars ...fr.Element) {
	for _, scalar := range scalars {
		scalarBytes := scalar.Bytes()
		t.appendMessage(label, scalarBytes[:])
	}
}

func (t *Transcript) GetAndAppendChallenge(label []byte) fr.Element {
	for {
		var dest [32]byte
		t.inner.ChallengeBytes(label, dest[:])
		var challenge fr.Element
		if err := challenge.SetBytesCanonical(dest[:]); err == nil {
			t.AppendScalars(label, challenge)
			return challenge
		}
	}
}
