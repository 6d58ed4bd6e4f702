// Package em - the maximization engine.
//
// Converts expected sufficient statistics into maximum-likelihood parameter
// estimates. No smoothing or regularization is applied: a parent
// configuration with zero expected visits is a real degeneracy and is
// reported, never coerced into NaN or zero.
package em

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/bayem/core"
)

// Maximize converts statistics into a fresh parameter triple:
//
//	qx[v]       = Mx[v] / ΣMx
//	qy[v]       = My[v] / ΣMy
//	qz[a][b][v] = Mz[a][b][v] / ΣMz[a][b][:]
//
// Pure function; the input statistics are not mutated.
//
// Errors:
//   - ErrDegenerate — a denominator is exactly zero (no expected mass for a
//     table or for one parent configuration). The wrapped message names the
//     empty table or qz row.
//
// Complexity: O(1) time and space (12 table entries).
func Maximize(st Stats) (core.Params, error) {
	var p core.Params

	nx := floats.Sum(st.X[:])
	if nx == 0 {
		return core.Params{}, fmt.Errorf("em: table qx has zero mass: %w", ErrDegenerate)
	}
	ny := floats.Sum(st.Y[:])
	if ny == 0 {
		return core.Params{}, fmt.Errorf("em: table qy has zero mass: %w", ErrDegenerate)
	}
	for v := 0; v < 2; v++ {
		p.X[v] = st.X[v] / nx
		p.Y[v] = st.Y[v] / ny
	}

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			row := floats.Sum(st.Z[a][b][:])
			if row == 0 {
				return core.Params{}, fmt.Errorf("em: qz row (x=%d,y=%d) has zero mass: %w", a, b, ErrDegenerate)
			}
			for v := 0; v < 2; v++ {
				p.Z[a][b][v] = st.Z[a][b][v] / row
			}
		}
	}
	return p, nil
}
