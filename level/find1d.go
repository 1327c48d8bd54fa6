package level

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Find1D returns k parameter values whose likelihood is closest to the
// likelihood enclosing the cumulative mass level, sorted by distance to the
// mode (nearest first).
//
// Algorithm:
//  1. mode = first index of max(likelihood).
//  2. cum[i] = Σ{l[j] : l[j] >= l[i]} / Σl.
//  3. closest = first index minimising |cum[i] - level|.
//  4. Rank samples by |l[i] - l[closest]| ascending, ties by index, keep k.
//  5. Sort the kept parameters by |p - p[mode]| ascending (stable).
//
// params need not be sorted. Complexity O(P log P).
func Find1D(params, likelihood []float64, level float64, k int) ([]float64, error) {
	n := len(likelihood)
	switch {
	case n == 0:
		return nil, fmt.Errorf("Find1D: %w", ErrEmpty)
	case len(params) != n:
		return nil, fmt.Errorf("Find1D: %d params vs %d samples: %w", len(params), n, ErrLengthMismatch)
	case !(level > 0 && level < 1):
		return nil, fmt.Errorf("Find1D: level=%g: %w", level, ErrBadLevel)
	case k < 1 || k > n:
		return nil, fmt.Errorf("Find1D: k=%d with %d samples: %w", k, n, ErrBadCount)
	}
	for _, v := range likelihood {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("Find1D: %w", ErrNegativeWeight)
		}
	}
	total := floats.Sum(likelihood)
	if total == 0 {
		return nil, fmt.Errorf("Find1D: %w", ErrZeroMass)
	}

	parmax := params[floats.MaxIdx(likelihood)]
	cum := CumulativeMass(likelihood)

	closest := 0
	best := math.Inf(1)
	for i, c := range cum {
		if d := math.Abs(c - level); d < best {
			best, closest = d, i
		}
	}

	ref := likelihood[closest]
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return math.Abs(likelihood[ranked[a]]-ref) < math.Abs(likelihood[ranked[b]]-ref)
	})

	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = params[ranked[i]]
	}
	sort.SliceStable(out, func(a, b int) bool {
		return math.Abs(out[a]-parmax) < math.Abs(out[b]-parmax)
	})

	return out, nil
}

// CumulativeMass returns, for every sample, the fraction of the total mass
// held by samples at least as likely as it. Equal likelihoods share the same
// value. The input must be non-negative with a positive sum.
func CumulativeMass(likelihood []float64) []float64 {
	n := len(likelihood)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return likelihood[order[a]] > likelihood[order[b]]
	})

	total := floats.Sum(likelihood)
	cum := make([]float64, n)
	acc := 0.0
	for i := 0; i < n; {
		// A run of equal likelihoods all count each other as "at least as likely".
		j := i
		for j < n && likelihood[order[j]] == likelihood[order[i]] {
			acc += likelihood[order[j]]
			j++
		}
		for m := i; m < j; m++ {
			cum[order[m]] = acc / total
		}
		i = j
	}

	return cum
}
