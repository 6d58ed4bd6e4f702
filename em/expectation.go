// Package em - the expectation engine.
//
// This file computes expected sufficient statistics for one EM iteration:
// per observation, the posterior responsibility over the missing parent(s)
// under current parameters, accumulated into Stats.
//
// The two subtle correctness rules live here:
//  1. Gating: when a parent is observed, the responsibility table is
//     structurally zero outside the row/column matching the observed value.
//  2. Observed parents are counted as an exact unit, never via the
//     responsibility table, so their statistics stay integral.
package em

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/bayem/core"
)

// Expect runs one expectation pass over data under parameters p and returns
// the expected sufficient statistics. Pure: neither input is mutated, and
// accumulation order never changes the result beyond float rounding.
//
// Per observation (x, y, z):
//   - both parents observed: add exact unit counts to Mx, My and Mz[x][y][z];
//   - otherwise: build the gated 2×2 joint table over parent candidates,
//     normalize it into a posterior, add unit counts for observed parents and
//     posterior marginals for missing ones, and add the full table into the
//     z-slice of Mz.
//
// Errors:
//   - ErrDegenerate — an observation has zero probability for all candidate
//     assignments of its missing parents (wrapped with the observation index).
//
// Complexity: O(n) time, O(1) space beyond the returned Stats.
func Expect(p core.Params, data core.Dataset) (Stats, error) {
	return expectSeq(p, data, 0)
}

// expectSeq accumulates statistics for one contiguous chunk. base is the
// chunk's offset in the full dataset, used only for error context.
func expectSeq(p core.Params, data core.Dataset, base int) (Stats, error) {
	var st Stats
	for i, o := range data {
		xv, xok := o.X.Get()
		yv, yok := o.Y.Get()

		// Complete-data fast path: exact unit counts, no posterior needed.
		if xok && yok {
			st.X[xv]++
			st.Y[yv]++
			st.Z[xv][yv][o.Z]++
			continue
		}

		q, total := joint(p, o)
		if total <= 0 {
			return Stats{}, fmt.Errorf("em: observation %d: %w", base+i, ErrDegenerate)
		}
		normalizeJoint(&q, total)
		if mass := jointSum(q); !scalar.EqualWithinAbs(mass, 1, core.SimplexTol) {
			// Unreachable unless normalization itself is broken.
			return Stats{}, fmt.Errorf("em: observation %d: posterior mass %g: %w", base+i, mass, ErrStatsMass)
		}

		// Observed parents contribute an exact unit; missing parents receive
		// the posterior marginal over their candidates.
		if xok {
			st.X[xv]++
		} else {
			st.X[0] += q[0][0] + q[0][1]
			st.X[1] += q[1][0] + q[1][1]
		}
		if yok {
			st.Y[yv]++
		} else {
			st.Y[0] += q[0][0] + q[1][0]
			st.Y[1] += q[0][1] + q[1][1]
		}

		// The full responsibility table always lands in the z-slice, so the
		// mass entering Mz matches what entered Mx and My.
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				st.Z[a][b][o.Z] += q[a][b]
			}
		}
	}
	return st, nil
}

// joint builds the gated, unnormalized joint table over parent candidates
// (a, b) for one observation, and returns it with its total mass.
//
// Entries incompatible with an observed parent are structurally zero; each
// compatible entry is qx[a]·qy[b]·qz[a][b][z]. Keeping the observed parents'
// prior factors does not change the normalized posterior (they are constant
// across the gated cells) and makes the total equal the observation's
// likelihood, which LogLikelihood reuses.
func joint(p core.Params, o core.Observation) (q [2][2]float64, total float64) {
	xv, xok := o.X.Get()
	yv, yok := o.Y.Get()
	for a := 0; a < 2; a++ {
		if xok && a != xv {
			continue
		}
		for b := 0; b < 2; b++ {
			if yok && b != yv {
				continue
			}
			w := p.X[a] * p.Y[b] * p.Z[a][b][o.Z]
			q[a][b] = w
			total += w
		}
	}
	return q, total
}

// normalizeJoint scales q by 1/total in place.
func normalizeJoint(q *[2][2]float64, total float64) {
	for a := 0; a < 2; a++ {
		floats.Scale(1/total, q[a][:])
	}
}

// jointSum returns the total mass of a 2×2 table.
func jointSum(q [2][2]float64) float64 {
	return floats.Sum(q[0][:]) + floats.Sum(q[1][:])
}

// expect dispatches between the sequential pass and the chunked parallel
// pass. workers ≤ 1 (or tiny datasets) run sequentially. Partial statistics
// are merged in fixed chunk order; the first error, by chunk order, wins.
func expect(p core.Params, data core.Dataset, workers int) (Stats, error) {
	n := len(data)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return expectSeq(p, data, 0)
	}

	partials := make([]Stats, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w], errs[w] = expectSeq(p, data[lo:hi], lo)
		}(w, lo, hi)
	}
	wg.Wait()

	var st Stats
	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			return Stats{}, errs[w]
		}
		st.merge(partials[w])
	}
	return st, nil
}
