package em_test

import (
	"testing"

	"github.com/katalvlaran/bayem/core"
	"github.com/katalvlaran/bayem/em"
	"github.com/katalvlaran/bayem/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_RecoversCompleteDataMLE verifies the recovery property:
// with 500 fully observed samples and uniform initialization, 10 iterations
// land exactly on the closed-form empirical MLE, and close to ground truth.
func TestRun_RecoversCompleteDataMLE(t *testing.T) {
	data, err := synthComplete(500)
	require.NoError(t, err)

	opts := em.DefaultOptions()
	opts.Iterations = 10
	p, err := em.Run(data, &opts)
	require.NoError(t, err)

	want := empiricalMLE(data)
	assert.Equal(t, want, p, "complete data: EM must coincide with the empirical MLE")

	truth := canonicalTruth()
	assert.InDelta(t, truth.X[1], p.X[1], 0.12, "qx should approach ground truth at n=500")
	assert.InDelta(t, truth.Y[1], p.Y[1], 0.12, "qy should approach ground truth at n=500")
}

// TestRun_Reproducible verifies bit-identical results for a fixed dataset
// and deterministic uniform initialization.
func TestRun_Reproducible(t *testing.T) {
	truth := canonicalTruth()
	data, err := synth.Generate(300, truth, synth.Policy{PartiallyObserved: true}, synth.WithSeed(9))
	require.NoError(t, err)

	opts := em.DefaultOptions()
	p1, err := em.Run(data, &opts)
	require.NoError(t, err)
	p2, err := em.Run(data, &opts)
	require.NoError(t, err)

	assert.Equal(t, p1, p2, "repeated runs must be bit-identical")
}

// TestRun_SmallSampleHeavyMissingness verifies the degradation contract:
// n=10 with heavy missingness must neither crash nor leak NaN — the simplex
// invariants hold, while accuracy is deliberately not asserted.
func TestRun_SmallSampleHeavyMissingness(t *testing.T) {
	opts := em.DefaultOptions()
	opts.Iterations = 10
	p, err := em.Run(heavyMissingDataset(), &opts)
	require.NoError(t, err, "degenerate-free small-sample run must complete")
	assert.NoError(t, p.Validate(), "final triple must satisfy all simplex invariants")
}

// TestRun_NeverCoobservedIsNotRecovered documents the MAR-violation failure
// mode: when X and Y are never jointly observed, the XOR-like interaction in
// qz is unidentifiable and the fit deviates substantially from truth even at
// n=500.
func TestRun_NeverCoobservedIsNotRecovered(t *testing.T) {
	truth := xorTruth()
	pol := synth.Policy{PartiallyObserved: true, NeverCoobserved: true}
	data, err := synth.Generate(500, truth, pol, synth.WithSeed(7))
	require.NoError(t, err)

	opts := em.DefaultOptions()
	opts.Iterations = 10
	p, err := em.Run(data, &opts)
	require.NoError(t, err)
	require.NoError(t, p.Validate(), "the fit itself must still be a valid triple")

	dev := maxConditionalDev(p.Z, truth.Z)
	assert.Greater(t, dev, 0.15, "qz must deviate substantially from the XOR ground truth")
}

// TestRun_WorkersMatchSequential verifies the chunked parallel expectation
// pass agrees with the sequential one.
func TestRun_WorkersMatchSequential(t *testing.T) {
	truth := canonicalTruth()
	data, err := synth.Generate(257, truth, synth.Policy{PartiallyObserved: true}, synth.WithSeed(13))
	require.NoError(t, err)

	seq := em.DefaultOptions()
	par := em.DefaultOptions()
	par.Workers = 4

	p1, err := em.Run(data, &seq)
	require.NoError(t, err)
	p2, err := em.Run(data, &par)
	require.NoError(t, err)

	assert.InDelta(t, p1.X[1], p2.X[1], 1e-9, "qx agrees across worker counts")
	assert.InDelta(t, p1.Y[1], p2.Y[1], 1e-9, "qy agrees across worker counts")
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			assert.InDelta(t, p1.Z[a][b][1], p2.Z[a][b][1], 1e-9, "qz row (%d,%d) agrees", a, b)
		}
	}
}

// TestRun_TolStopsEarlyAtFixedPoint verifies early stopping: complete data
// reaches its fixed point after one iteration, so a tolerance-enabled run
// returns the same triple as the fixed-T run.
func TestRun_TolStopsEarlyAtFixedPoint(t *testing.T) {
	data, err := synthComplete(500)
	require.NoError(t, err)

	fixed := em.DefaultOptions()
	eager := em.DefaultOptions()
	eager.Iterations = 50
	eager.Tol = 1e-9

	p1, err := em.Run(data, &fixed)
	require.NoError(t, err)
	p2, err := em.Run(data, &eager)
	require.NoError(t, err)

	assert.Equal(t, p1, p2, "early stop at a fixed point must not change the result")
}

// TestRun_InputValidation verifies option and dataset rejection paths.
func TestRun_InputValidation(t *testing.T) {
	data := heavyMissingDataset()

	_, err := em.Run(nil, nil)
	assert.ErrorIs(t, err, em.ErrEmptyDataset, "empty dataset is rejected")

	bad := em.DefaultOptions()
	bad.Iterations = 0
	_, err = em.Run(data, &bad)
	assert.ErrorIs(t, err, em.ErrBadOptions, "non-positive iteration count is rejected")

	bad = em.DefaultOptions()
	bad.Tol = -1
	_, err = em.Run(data, &bad)
	assert.ErrorIs(t, err, em.ErrBadOptions, "negative tolerance is rejected")

	bad = em.DefaultOptions()
	bad.Init = core.InitMode(42)
	_, err = em.Run(data, &bad)
	assert.ErrorIs(t, err, core.ErrUnknownInitMode, "unknown init mode propagates")

	broken := core.Dataset{{X: core.Observed(3), Y: core.Observed(0), Z: 0}}
	_, err = em.Run(broken, nil)
	assert.ErrorIs(t, err, core.ErrBadValue, "value-domain violations propagate")
}

// TestRun_RandomInitSeedsDiverge verifies Random initialization honors the
// seed: distinct seeds may converge differently on ambiguous data, while a
// repeated seed is bit-identical.
func TestRun_RandomInitSeedsDiverge(t *testing.T) {
	truth := canonicalTruth()
	data, err := synth.Generate(100, truth, synth.Policy{PartiallyObserved: true}, synth.WithSeed(21))
	require.NoError(t, err)

	opts := em.DefaultOptions()
	opts.Init = core.Random
	opts.Seed = 17
	p1, err := em.Run(data, &opts)
	require.NoError(t, err)
	p2, err := em.Run(data, &opts)
	require.NoError(t, err)

	assert.Equal(t, p1, p2, "same seed, same fit")
	assert.NoError(t, p1.Validate())
}
