// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// validate.go - structural checks for CSR producers and candidate sets.
//
// Check order (first failure wins, deterministic):
//   base -> size -> RowStart length -> monotone rows -> edge counts
//   -> column range -> weights.

package csr

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

const (
	methodValidate        = "Validate"
	methodCheckCandidates = "CheckCandidates"
)

// New assembles a Graph from its arrays and validates it.
func New[V, I Integer](n V, rowStart []I, colIndex []V, weight []float64, base V) (*Graph[V, I], error) {
	g := &Graph[V, I]{
		N:        n,
		RowStart: rowStart,
		ColIndex: colIndex,
		Weight:   weight,
		Base:     base,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks every structural invariant documented on Graph and that
// all weights are finite and non-negative.
func (g *Graph[V, I]) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Base != 0 && g.Base != 1 {
		return fmt.Errorf("%s: base=%d: %w", methodValidate, g.Base, ErrBadBase)
	}
	if g.N < 0 {
		return fmt.Errorf("%s: n=%d: %w", methodValidate, g.N, ErrBadSize)
	}

	n := int(g.N)
	if len(g.RowStart) != n+1 {
		return fmt.Errorf("%s: len(RowStart)=%d, want %d: %w",
			methodValidate, len(g.RowStart), n+1, ErrRowStartLength)
	}

	base := I(g.Base)
	if g.RowStart[0] < base {
		return fmt.Errorf("%s: RowStart[0]=%d below base: %w", methodValidate, g.RowStart[0], ErrNonMonotoneRow)
	}
	for v := 0; v < n; v++ {
		if g.RowStart[v] > g.RowStart[v+1] {
			return fmt.Errorf("%s: RowStart[%d]=%d > RowStart[%d]=%d: %w",
				methodValidate, v, g.RowStart[v], v+1, g.RowStart[v+1], ErrNonMonotoneRow)
		}
	}

	nnz := g.NumEdges()
	if nnz != len(g.ColIndex) || nnz != len(g.Weight) {
		return fmt.Errorf("%s: nnz=%d, len(ColIndex)=%d, len(Weight)=%d: %w",
			methodValidate, nnz, len(g.ColIndex), len(g.Weight), ErrEdgeCount)
	}

	for j, c := range g.ColIndex {
		if !g.Contains(c) {
			return fmt.Errorf("%s: ColIndex[%d]=%d: %w", methodValidate, j, c, ErrColumnOutOfRange)
		}
	}

	for j, w := range g.Weight {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%s: Weight[%d]=%g: %w", methodValidate, j, w, ErrInvalidWeight)
		}
		if w < 0 {
			return fmt.Errorf("%s: Weight[%d]=%g: %w", methodValidate, j, w, ErrNegativeWeight)
		}
	}

	return nil
}

// CheckCandidates verifies that every id in ids names a vertex of g and that
// no id repeats. The sweep engine does not perform the duplicate check
// itself; callers holding untrusted candidate lists run this first.
func CheckCandidates[V, I Integer](g *Graph[V, I], ids []V) error {
	if g == nil {
		return ErrNilGraph
	}

	seen := roaring64.New()
	for i, id := range ids {
		if !g.Contains(id) {
			return fmt.Errorf("%s: ids[%d]=%d: %w", methodCheckCandidates, i, id, ErrVertexOutOfRange)
		}
		// Membership is tracked on zero-based ids.
		v := uint64(id - g.Base)
		if seen.Contains(v) {
			return fmt.Errorf("%s: ids[%d]=%d: %w", methodCheckCandidates, i, id, ErrDuplicateCandidate)
		}
		seen.Add(v)
	}

	return nil
}
