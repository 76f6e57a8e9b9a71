// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// build.go - CSR assembly from edge lists and base-offset conversion.
//
// Contract:
//   - Edge endpoints are given in the caller's convention (shifted by base).
//   - symmetric=true stores every non-loop edge in both endpoint rows; a
//     self-loop is stored once.
//   - Within a row, entries keep the input order of edges (stable counting
//     sort), so identical inputs always produce identical arrays.
//   - The result is validated before it is returned.
//
// Complexity:
//   - Time: O(n + len(edges)).
//   - Space: O(n + len(edges)).

package csr

import "fmt"

const (
	methodFromEdges = "FromEdges"
	methodWithBase  = "WithBase"
)

// FromEdges builds a Graph over n vertices from an edge list.
func FromEdges[V, I Integer](n, base V, edges []Edge[V], symmetric bool) (*Graph[V, I], error) {
	if base != 0 && base != 1 {
		return nil, fmt.Errorf("%s: base=%d: %w", methodFromEdges, base, ErrBadBase)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFromEdges, n, ErrBadSize)
	}

	probe := Graph[V, I]{N: n, Base: base}
	size := int(n)

	// 1) Count row lengths.
	counts := make([]int, size)
	for i, e := range edges {
		if !probe.Contains(e.From) || !probe.Contains(e.To) {
			return nil, fmt.Errorf("%s: edges[%d]=(%d,%d): %w",
				methodFromEdges, i, e.From, e.To, ErrVertexOutOfRange)
		}
		counts[e.From-base]++
		if symmetric && e.From != e.To {
			counts[e.To-base]++
		}
	}

	// 2) Prefix sums into RowStart; cursor tracks the next free slot per row.
	rowStart := make([]I, size+1)
	cursor := make([]int, size)
	total := 0
	for v := 0; v < size; v++ {
		rowStart[v] = I(total) + I(base)
		cursor[v] = total
		total += counts[v]
	}
	rowStart[size] = I(total) + I(base)

	// 3) Scatter entries.
	colIndex := make([]V, total)
	weight := make([]float64, total)
	place := func(from, to V, w float64) {
		k := cursor[from-base]
		colIndex[k] = to
		weight[k] = w
		cursor[from-base]++
	}
	for _, e := range edges {
		place(e.From, e.To, e.Weight)
		if symmetric && e.From != e.To {
			place(e.To, e.From, e.Weight)
		}
	}

	return New(n, rowStart, colIndex, weight, base)
}

// WithBase returns a copy of g re-expressed in another base offset. The
// receiver is not modified.
func (g *Graph[V, I]) WithBase(base V) (*Graph[V, I], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if base != 0 && base != 1 {
		return nil, fmt.Errorf("%s: base=%d: %w", methodWithBase, base, ErrBadBase)
	}

	out := &Graph[V, I]{
		N:        g.N,
		RowStart: make([]I, len(g.RowStart)),
		ColIndex: make([]V, len(g.ColIndex)),
		Weight:   append([]float64(nil), g.Weight...),
		Base:     base,
	}
	for i, r := range g.RowStart {
		out.RowStart[i] = r - I(g.Base) + I(base)
	}
	for j, c := range g.ColIndex {
		out.ColIndex[j] = c - g.Base + base
	}

	return out, nil
}
