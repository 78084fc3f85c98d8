package checker

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/jsign/permutations/transcript"
)

var (
	labelTranscript = []byte("permutation_fingerprint")
	labelValues     = []byte("fingerprint_values")
	labelAlpha      = []byte("fingerprint_alpha")
)

// Fingerprint evaluates prod(alpha - v) over the BLS12-381 scalar field. Two
// buffers with different multisets agree at a random alpha with probability
// at most len(values)/|fr|.
func Fingerprint(alpha fr.Element, values []uint32) fr.Element {
	res := fr.One()
	var term fr.Element
	for _, v := range values {
		term.SetUint64(uint64(v))
		term.Sub(&alpha, &term)
		res.Mul(&res, &term)
	}
	return res
}

// rangeFingerprint is Fingerprint of [1, 2, ..., n] without materializing it.
func rangeFingerprint(alpha fr.Element, n int) fr.Element {
	res := fr.One()
	var term fr.Element
	for k := 1; k <= n; k++ {
		term.SetUint64(uint64(k))
		term.Sub(&alpha, &term)
		res.Mul(&res, &term)
	}
	return res
}

// Challenge derives the evaluation point from the candidate itself, so it
// can't be chosen independently of the values being checked.
func Challenge(values []uint32) fr.Element {
	t := transcript.New(labelTranscript)
	t.AppendUint32s(labelValues, values)
	return t.GetAndAppendChallenge(labelAlpha)
}

// VerifyFingerprint checks, with overwhelming probability, that candidate holds
// the multiset {1..len(candidate)}. It needs no sorting and no extra buffer.
func VerifyFingerprint(candidate []uint32) error {
	alpha := Challenge(candidate)
	got := Fingerprint(alpha, candidate)
	want := rangeFingerprint(alpha, len(candidate))
	if !got.Equal(&want) {
		return fmt.Errorf("%w: multiset fingerprint mismatch over %d values", ErrIntegrity, len(candidate))
	}
	return nil
}
