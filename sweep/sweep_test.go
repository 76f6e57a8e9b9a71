package sweep_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/sweepcut/csr"
	"github.com/katalvlaran/sweepcut/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// path4 is the unweighted path 0-1-2-3, zero-based.
func path4(t *testing.T) *csr.Graph[int64, int64] {
	t.Helper()
	g, err := csr.Path[int64, int64](4)
	require.NoError(t, err)

	return g
}

// TestSweep_PathScenario walks the four prefixes of 0-1-2-3: conductance
// 1, 1/3, 1, 1, so the winner is {0, 1}.
func TestSweep_PathScenario(t *testing.T) {
	g := path4(t)
	ids := []int64{0, 1, 2, 3}

	res, err := sweep.Sweep(g, ids, sweep.WithDegrees([]float64{1, 2, 2, 1}))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length)
	assert.InDelta(t, 1.0/3.0, res.Conductance, eps)
	assert.Equal(t, []int64{0, 1}, res.Vertices)

	steps, err := sweep.Profile(g, ids)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	wantCut := []float64{1, 1, 1, 0}
	wantVol := []float64{1, 3, 5, 6}
	wantPhi := []float64{1, 1.0 / 3.0, 1, 1}
	for i, s := range steps {
		assert.Equal(t, wantCut[i], s.Cut, "cut of prefix %d", i+1)
		assert.Equal(t, wantVol[i], s.Volume, "volume of prefix %d", i+1)
		assert.InDelta(t, wantPhi[i], s.Conductance, eps, "conductance of prefix %d", i+1)
	}
}

// TestSweep_IsolatedVertex covers the volume-zero degenerate case.
func TestSweep_IsolatedVertex(t *testing.T) {
	g, err := csr.New[int64, int64](1, []int64{0, 0}, nil, nil, 0)
	require.NoError(t, err)

	res, err := sweep.Sweep(g, []int64{0})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, 1.0, res.Conductance)
	assert.Equal(t, []int64{0}, res.Vertices)
}

// TestSweep_SingleCandidate always returns the lone vertex.
func TestSweep_SingleCandidate(t *testing.T) {
	g := path4(t)
	for v := int64(0); v < 4; v++ {
		res, err := sweep.Sweep(g, []int64{v})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Length)
		assert.Equal(t, []int64{v}, res.Vertices)
	}
}

// TestSweep_DegreeOverride shows supplied degrees win over row sums.
func TestSweep_DegreeOverride(t *testing.T) {
	g := path4(t)
	ids := []int64{0, 1, 2, 3}
	wrong := []float64{5, 5, 5, 5}

	steps, err := sweep.Profile(g, ids, sweep.WithDegrees(wrong))
	require.NoError(t, err)
	for i, s := range steps {
		assert.Equal(t, float64(5*(i+1)), s.Volume)
	}

	// vol({0,1}) = 10 against a total of 6 from the edge weights:
	// cut = 10 − 2 = 8, min(10, −4) = −4, φ = −2.
	res, err := sweep.Sweep(g, ids, sweep.WithDegrees(wrong))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length)
	assert.InDelta(t, -2.0, res.Conductance, eps)

	ref, err := sweep.Conductance(g, res.Vertices, sweep.WithDegrees(wrong))
	require.NoError(t, err)
	assert.InDelta(t, res.Conductance, ref, eps)

	exact, err := sweep.Sweep(g, ids, sweep.WithDegrees(g.Degrees()))
	require.NoError(t, err)
	plain, err := sweep.Sweep(g, ids)
	require.NoError(t, err)
	assert.Equal(t, plain, exact, "exact override must match on-demand degrees")
}

// TestSweep_ZeroDegreeCandidate leaves the cut unchanged.
func TestSweep_ZeroDegreeCandidate(t *testing.T) {
	g, err := csr.FromEdges[int64, int64](5, 0, []csr.Edge[int64]{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, true)
	require.NoError(t, err)

	steps, err := sweep.Profile(g, []int64{0, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, steps[0].Cut, steps[1].Cut)
	assert.Equal(t, steps[0].Volume, steps[1].Volume)
	assert.Equal(t, steps[0].Conductance, steps[1].Conductance)
}

// TestSweep_SelfLoopStaysInCut verifies a loop is never treated as interior.
func TestSweep_SelfLoopStaysInCut(t *testing.T) {
	g, err := csr.FromEdges[int64, int64](2, 0, []csr.Edge[int64]{
		{From: 0, To: 0, Weight: 3},
		{From: 0, To: 1, Weight: 1},
	}, true)
	require.NoError(t, err)

	steps, err := sweep.Profile(g, []int64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 4.0, steps[0].Cut)
	assert.Equal(t, 4.0, steps[0].Conductance)
	assert.Equal(t, 3.0, steps[1].Cut)
	assert.Equal(t, 1.0, steps[1].Conductance, "full volume is degenerate")

	ref, err := sweep.Conductance(g, []int64{0})
	require.NoError(t, err)
	assert.Equal(t, 4.0, ref)
}

// TestSweep_TieKeepsShortestPrefix checks the strict-less tie break. Every
// prefix of the leaves of a 3-leaf star has φ = 1.
func TestSweep_TieKeepsShortestPrefix(t *testing.T) {
	g, err := csr.Star[int64, int64](4)
	require.NoError(t, err)

	steps, err := sweep.Profile(g, []int64{1, 2, 3})
	require.NoError(t, err)
	for _, s := range steps {
		assert.Equal(t, 1.0, s.Conductance)
	}

	res, err := sweep.Sweep(g, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, []int64{1}, res.Vertices)
}

// TestSweep_BarbellFindsClique recovers one clique and is idempotent on it.
func TestSweep_BarbellFindsClique(t *testing.T) {
	g, err := csr.Barbell[int64, int64](4)
	require.NoError(t, err)

	res, err := sweep.Sweep(g, []int64{0, 1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Length)
	assert.Equal(t, []int64{0, 1, 2, 3}, res.Vertices)
	assert.InDelta(t, 1.0/13.0, res.Conductance, eps)

	again, err := sweep.Sweep(g, res.Vertices)
	require.NoError(t, err)
	assert.Equal(t, res.Length, again.Length, "winning prefix must be minimal among its own prefixes")
	assert.Equal(t, res.Conductance, again.Conductance)
}

// TestSweep_RandomOrderings checks the prefix property, the reference
// conductance and idempotence over many random orderings of a grid.
func TestSweep_RandomOrderings(t *testing.T) {
	g, err := csr.Grid[int64, int64](4, 5)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		k := 1 + rng.IntN(int(g.N))
		perm := rng.Perm(int(g.N))[:k]
		ids := make([]int64, k)
		for i, p := range perm {
			ids[i] = int64(p)
		}

		res, err := sweep.Sweep(g, ids)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Length, 1)
		require.LessOrEqual(t, res.Length, k)
		assert.Equal(t, ids[:res.Length], res.Vertices)

		ref, err := sweep.Conductance(g, res.Vertices)
		require.NoError(t, err)
		assert.InDelta(t, ref, res.Conductance, 1e-9)

		steps, err := sweep.Profile(g, ids)
		require.NoError(t, err)
		for i, s := range steps {
			if i < res.Length-1 {
				assert.Greater(t, s.Conductance, res.Conductance)
			} else {
				assert.GreaterOrEqual(t, s.Conductance, res.Conductance)
			}
		}

		again, err := sweep.Sweep(g, res.Vertices)
		require.NoError(t, err)
		assert.Equal(t, res.Length, again.Length)
	}
}

// TestSweep_RankMapsAgree runs both rank strategies on the same input.
func TestSweep_RankMapsAgree(t *testing.T) {
	g, err := csr.Grid[int64, int64](3, 3)
	require.NoError(t, err)
	ids := []int64{4, 1, 3, 5, 7, 0}

	dense, err := sweep.Sweep(g, ids, sweep.WithRankMap(sweep.RankDense))
	require.NoError(t, err)
	hash, err := sweep.Sweep(g, ids, sweep.WithRankMap(sweep.RankHash))
	require.NoError(t, err)
	assert.Equal(t, dense, hash)
}

// TestSweep_OneBasedMatchesZeroBased shifts graph and ids by one.
func TestSweep_OneBasedMatchesZeroBased(t *testing.T) {
	g0, err := csr.Barbell[uint32, int64](3)
	require.NoError(t, err)
	g1, err := g0.WithBase(1)
	require.NoError(t, err)

	ids0 := []uint32{0, 1, 2, 3, 4, 5}
	ids1 := []uint32{1, 2, 3, 4, 5, 6}

	r0, err := sweep.Sweep(g0, ids0)
	require.NoError(t, err)
	r1, err := sweep.Sweep(g1, ids1)
	require.NoError(t, err)

	assert.Equal(t, r0.Length, r1.Length)
	assert.Equal(t, r0.Conductance, r1.Conductance)
	assert.Equal(t, []uint32{1, 2, 3}, r1.Vertices)
}

// TestSweep_IndexWidths runs the same sweep at every supported width pairing.
func TestSweep_IndexWidths(t *testing.T) {
	g64, err := csr.Path[int64, int64](6)
	require.NoError(t, err)
	g32, err := csr.Path[uint32, uint32](6)
	require.NoError(t, err)
	gMixed, err := csr.Path[uint32, int64](6)
	require.NoError(t, err)

	r64, err := sweep.Sweep(g64, []int64{2, 3, 1, 4, 0, 5})
	require.NoError(t, err)
	r32, err := sweep.Sweep(g32, []uint32{2, 3, 1, 4, 0, 5})
	require.NoError(t, err)
	rMixed, err := sweep.Sweep(gMixed, []uint32{2, 3, 1, 4, 0, 5})
	require.NoError(t, err)

	assert.Equal(t, r64.Length, r32.Length)
	assert.Equal(t, r64.Length, rMixed.Length)
	assert.Equal(t, r64.Conductance, r32.Conductance)
	assert.Equal(t, r64.Conductance, rMixed.Conductance)
}

// TestSweepInto_LeavesTailUntouched verifies only dst[:Length] is written.
func TestSweepInto_LeavesTailUntouched(t *testing.T) {
	g := path4(t)
	dst := []int64{-1, -1, -1, -1}

	res, err := sweep.SweepInto(dst[:0], g, []int64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, []int64{0, 1, -1, -1}, dst)

	res.Vertices[0] = 9
	assert.Equal(t, int64(9), dst[0], "Vertices aliases the caller's buffer")
}

// TestSweep_Errors covers every sentinel raised by the entry points.
func TestSweep_Errors(t *testing.T) {
	g := path4(t)

	_, err := sweep.Sweep[int64, int64](nil, []int64{0})
	assert.ErrorIs(t, err, sweep.ErrNilGraph)

	_, err = sweep.Sweep(g, nil)
	assert.ErrorIs(t, err, sweep.ErrNoCandidates)

	_, err = sweep.Sweep(g, []int64{0, 4})
	assert.ErrorIs(t, err, sweep.ErrVertexOutOfRange)

	_, err = sweep.Sweep(g, []int64{-1})
	assert.ErrorIs(t, err, sweep.ErrVertexOutOfRange)

	_, err = sweep.Sweep(g, []int64{0}, sweep.WithDegrees([]float64{1, 2}))
	assert.ErrorIs(t, err, sweep.ErrDegreesLength)

	_, err = sweep.SweepInto(make([]int64, 0, 1), g, []int64{0, 1})
	assert.ErrorIs(t, err, sweep.ErrShortBuffer)

	_, err = sweep.Sweep(g, []int64{0}, sweep.WithRankMap(sweep.RankMap(9)))
	assert.ErrorIs(t, err, sweep.ErrOptionViolation)

	_, err = sweep.SweepSorted(g, []float64{1}, []int64{0, 1})
	assert.ErrorIs(t, err, sweep.ErrLengthMismatch)

	_, err = sweep.Profile(g, []int64{})
	assert.ErrorIs(t, err, sweep.ErrNoCandidates)
}
