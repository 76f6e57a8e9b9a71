package csr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sweepcut/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Table walks every structural violation Validate reports.
func TestValidate_Table(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *csr.Graph[int64, int64])
		want   error
	}{
		{"ok", func(*csr.Graph[int64, int64]) {}, nil},
		{"bad base", func(g *csr.Graph[int64, int64]) { g.Base = 2 }, csr.ErrBadBase},
		{"negative n", func(g *csr.Graph[int64, int64]) { g.N = -1 }, csr.ErrBadSize},
		{"short rows", func(g *csr.Graph[int64, int64]) { g.RowStart = g.RowStart[:4] }, csr.ErrRowStartLength},
		{"non-monotone", func(g *csr.Graph[int64, int64]) { g.RowStart[2] = 0 }, csr.ErrNonMonotoneRow},
		{"row below base", func(g *csr.Graph[int64, int64]) { g.RowStart[0] = -1 }, csr.ErrNonMonotoneRow},
		{"edge count", func(g *csr.Graph[int64, int64]) { g.Weight = g.Weight[:5] }, csr.ErrEdgeCount},
		{"column range", func(g *csr.Graph[int64, int64]) { g.ColIndex[3] = 4 }, csr.ErrColumnOutOfRange},
		{"nan weight", func(g *csr.Graph[int64, int64]) { g.Weight[0] = math.NaN() }, csr.ErrInvalidWeight},
		{"inf weight", func(g *csr.Graph[int64, int64]) { g.Weight[0] = math.Inf(1) }, csr.ErrInvalidWeight},
		{"negative weight", func(g *csr.Graph[int64, int64]) { g.Weight[1] = -1 }, csr.ErrNegativeWeight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := path4()
			tc.mutate(g)
			err := g.Validate()
			if tc.want == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidate_Nil ensures a nil receiver is reported, not dereferenced.
func TestValidate_Nil(t *testing.T) {
	var g *csr.Graph[int64, int64]
	assert.ErrorIs(t, g.Validate(), csr.ErrNilGraph)
}

// TestNew_RejectsMalformed checks New surfaces Validate errors.
func TestNew_RejectsMalformed(t *testing.T) {
	_, err := csr.New[int32, int32](2, []int32{0, 1, 1}, []int32{5}, []float64{1}, 0)
	assert.ErrorIs(t, err, csr.ErrColumnOutOfRange)
}

// TestCheckCandidates covers the accepted, out-of-range and duplicate cases.
func TestCheckCandidates(t *testing.T) {
	g := path4()

	require.NoError(t, csr.CheckCandidates(g, []int64{3, 0, 2}))
	require.NoError(t, csr.CheckCandidates(g, nil))

	err := csr.CheckCandidates(g, []int64{0, 4})
	assert.ErrorIs(t, err, csr.ErrVertexOutOfRange)

	err = csr.CheckCandidates(g, []int64{1, 2, 1})
	assert.ErrorIs(t, err, csr.ErrDuplicateCandidate)

	one, err := g.WithBase(1)
	require.NoError(t, err)
	assert.ErrorIs(t, csr.CheckCandidates(one, []int64{0}), csr.ErrVertexOutOfRange)
	assert.NoError(t, csr.CheckCandidates(one, []int64{1, 2, 3, 4}))

	assert.ErrorIs(t, csr.CheckCandidates[int64, int64](nil, []int64{0}), csr.ErrNilGraph)
}
