// Package uniformity measures how evenly a permutation generator spreads
// values across positions.
package uniformity

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrNotEnoughData = errors.New("not enough data")

// PositionCounts runs gen trials times and tallies counts[pos][value-1].
func PositionCounts(n, trials int, gen func() ([]uint32, error)) ([][]uint64, error) {
	if n < 2 || trials < 1 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrNotEnoughData, n, trials)
	}
	counts := make([][]uint64, n)
	for i := range counts {
		counts[i] = make([]uint64, n)
	}
	for t := 0; t < trials; t++ {
		perm, err := gen()
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", t, err)
		}
		if len(perm) != n {
			return nil, fmt.Errorf("trial %d: got %d values, expected %d", t, len(perm), n)
		}
		for pos, v := range perm {
			if v == 0 || int(v) > n {
				return nil, fmt.Errorf("trial %d: value %d out of range", t, v)
			}
			counts[pos][v-1]++
		}
	}
	return counts, nil
}

// Result is Pearson's goodness-of-fit against the uniform distribution for
// one position.
type Result struct {
	Position int
	Stat     float64
	DF       int
	PValue   float64
}

func ChiSquare(counts [][]uint64) ([]Result, error) {
	results := make([]Result, len(counts))
	for pos, row := range counts {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: position %d has %d categories", ErrNotEnoughData, pos, len(row))
		}
		var total uint64
		for _, c := range row {
			total += c
		}
		if total == 0 {
			return nil, fmt.Errorf("%w: position %d has no observations", ErrNotEnoughData, pos)
		}

		expected := float64(total) / float64(len(row))
		var stat float64
		for _, c := range row {
			d := float64(c) - expected
			stat += d * d / expected
		}
		df := len(row) - 1
		results[pos] = Result{
			Position: pos,
			Stat:     stat,
			DF:       df,
			PValue:   distuv.ChiSquared{K: float64(df)}.Survival(stat),
		}
	}
	return results, nil
}

// MinPValue returns the most extreme position.
func MinPValue(results []Result) Result {
	worst := Result{PValue: math.Inf(1)}
	for _, r := range results {
		if r.PValue < worst.PValue {
			worst = r
		}
	}
	return worst
}
