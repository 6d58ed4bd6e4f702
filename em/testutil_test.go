package em_test

import (
	"math"

	"github.com/katalvlaran/bayem/core"
	"github.com/katalvlaran/bayem/synth"
)

// synthComplete samples n fully observed rows from the canonical truth with
// a fixed seed.
func synthComplete(n int) (core.Dataset, error) {
	return synth.Generate(n, canonicalTruth(), synth.Policy{}, synth.WithSeed(42))
}

// canonicalTruth is the ground-truth triple used by recovery tests:
// px=[0.6,0.4], py=[0.3,0.7], and a qz whose cells all sit well inside
// (0,1) so empirical counts at n=500 stay positive.
func canonicalTruth() core.Params {
	return core.Params{
		X: core.Marginal{0.6, 0.4},
		Y: core.Marginal{0.3, 0.7},
		Z: core.Conditional{
			{{0.3, 0.7}, {0.6, 0.4}},
			{{0.7, 0.3}, {0.2, 0.8}},
		},
	}
}

// xorTruth is an XOR-like ground truth: P(Z=1|X,Y) ≈ 0.9 exactly when the
// parents disagree. Its parent interaction is invisible to any dataset in
// which X and Y are never observed together.
func xorTruth() core.Params {
	return core.Params{
		X: core.Marginal{0.6, 0.4},
		Y: core.Marginal{0.3, 0.7},
		Z: core.Conditional{
			{{0.9, 0.1}, {0.1, 0.9}},
			{{0.1, 0.9}, {0.9, 0.1}},
		},
	}
}

// maxConditionalDev returns the largest absolute difference between two
// conditional tables across all (x,y,z) cells.
func maxConditionalDev(a, b core.Conditional) float64 {
	var dev float64
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				if d := math.Abs(a[x][y][z] - b[x][y][z]); d > dev {
					dev = d
				}
			}
		}
	}
	return dev
}

// empiricalMLE computes the closed-form complete-data maximum-likelihood
// estimate by direct counting. Panics (via index) if data has any missing
// value; callers use it only on fully observed datasets.
func empiricalMLE(data core.Dataset) core.Params {
	var nx, ny [2]float64
	var nz [2][2][2]float64
	for _, o := range data {
		x, _ := o.X.Get()
		y, _ := o.Y.Get()
		nx[x]++
		ny[y]++
		nz[x][y][o.Z]++
	}
	n := float64(len(data))
	var p core.Params
	for v := 0; v < 2; v++ {
		p.X[v] = nx[v] / n
		p.Y[v] = ny[v] / n
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			row := nz[a][b][0] + nz[a][b][1]
			for v := 0; v < 2; v++ {
				p.Z[a][b][v] = nz[a][b][v] / row
			}
		}
	}
	return p
}

// heavyMissingDataset is a handcrafted n=10 dataset exercising every
// missingness pattern; the fully missing rows guarantee every parent
// configuration keeps positive expected mass under positive parameters.
func heavyMissingDataset() core.Dataset {
	return core.Dataset{
		{X: core.Missing(), Y: core.Missing(), Z: 0},
		{X: core.Missing(), Y: core.Missing(), Z: 1},
		{X: core.Missing(), Y: core.Observed(0), Z: 1},
		{X: core.Missing(), Y: core.Observed(1), Z: 0},
		{X: core.Observed(0), Y: core.Missing(), Z: 1},
		{X: core.Observed(1), Y: core.Missing(), Z: 0},
		{X: core.Observed(0), Y: core.Observed(1), Z: 1},
		{X: core.Observed(1), Y: core.Observed(0), Z: 0},
		{X: core.Missing(), Y: core.Missing(), Z: 1},
		{X: core.Observed(1), Y: core.Missing(), Z: 1},
	}
}
