package permutations

import (
	"fmt"

	"github.com/jsign/permutations/common"
	"github.com/jsign/permutations/harness"
	"github.com/jsign/permutations/prng"
	"github.com/jsign/permutations/sequence"
)

// Benchmark runs s once at size n under h and returns the measured record.
func Benchmark(h *harness.Harness, n int, s Strategy, cfg Config) (harness.Record, error) {
	run, err := Prepare(n, s, cfg)
	if err != nil {
		return harness.Record{}, err
	}
	return h.Run(harness.Case{
		Name: string(s),
		Ops:  uint64(n),
		Run: func() error {
			_, err := run()
			return err
		},
	})
}

// Suite returns every comparison at size n: the sequence builders on their
// own, N draws from each source, and the three strategies.
func Suite(n int, cfg Config) ([]harness.Case, error) {
	if err := common.ValidateSize(n); err != nil {
		return nil, err
	}
	a, src, k := cfg.allocator(), cfg.source(), cfg.bucketFactor()
	ops := uint64(n)

	seed := prng.TimeSeed()
	mulberry := prng.NewMulberry32(seed)
	xorshift := prng.NewXorshift128FromSeed(seed)
	mt := prng.NewMT19937(uint64(seed))
	shake, err := prng.NewShake(uint64(seed))
	if err != nil {
		return nil, fmt.Errorf("creating shake source: %s", err)
	}

	cases := []harness.Case{
		{Name: "fill-ascending", Ops: ops, Run: func() error {
			_, err := sequence.Ascending(a, n)
			return err
		}},
		{Name: "fill-ascending-mapped", Ops: ops, Run: func() error {
			_, err := sequence.AscendingMapped(a, n)
			return err
		}},
		{Name: "fill-key-pairs", Ops: ops, Run: func() error {
			_, err := sequence.KeyPairs(a, n, src)
			return err
		}},
		{Name: "fill-buckets", Ops: ops, Run: func() error {
			_, err := sequence.Buckets(a, n, k)
			return err
		}},
		{Name: "draw-mulberry32", Ops: ops, Run: func() error {
			prng.DrainFloat(mulberry, n)
			return nil
		}},
		{Name: "draw-xorshift128", Ops: ops, Run: func() error {
			prng.DrainUint32(xorshift, n)
			return nil
		}},
		{Name: "draw-mt19937", Ops: ops, Run: func() error {
			prng.DrainUint32(mt, n)
			return nil
		}},
		{Name: "draw-shake", Ops: ops, Run: func() error {
			prng.DrainUint32(shake, n)
			return nil
		}},
	}

	for _, s := range Strategies() {
		run, err := Prepare(n, s, cfg)
		if err != nil {
			return nil, fmt.Errorf("preparing %s: %w", s, err)
		}
		cases = append(cases, harness.Case{
			Name: string(s),
			Ops:  ops,
			Run: func() error {
				_, err := run()
				return err
			},
		})
	}
	return cases, nil
}
