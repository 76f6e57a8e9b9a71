// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// graph.go - read-only accessors over a well-formed Graph.
//
// Conventions:
//   - Methods taking a vertex argument named v expect a ZERO-BASED id
//     (already shifted by Base). Methods taking id expect the caller's
//     convention (Base-shifted).
//   - No accessor validates; call Validate once at the boundary instead.
//
// Complexity:
//   - Row, Neighbor, Contains: O(1).
//   - Degree: O(row length). Degrees, TotalVolume: O(N + nnz).

package csr

import "gonum.org/v1/gonum/floats"

// NumEdges returns the number of stored edge entries, RowStart[N]-Base.
func (g *Graph[V, I]) NumEdges() int {
	return int(g.RowStart[g.N]) - int(g.Base)
}

// Row returns the half-open edge range [lo, hi) of zero-based vertex v.
func (g *Graph[V, I]) Row(v V) (lo, hi int) {
	base := int(g.Base)

	return int(g.RowStart[v]) - base, int(g.RowStart[v+1]) - base
}

// Neighbor returns the zero-based neighbour id stored at edge position j.
func (g *Graph[V, I]) Neighbor(j int) V {
	return g.ColIndex[j] - g.Base
}

// Contains reports whether id, in the caller's convention, names a vertex.
func (g *Graph[V, I]) Contains(id V) bool {
	return id >= g.Base && id-g.Base < g.N
}

// Degree returns the weighted degree of zero-based vertex v: the sum of
// Weight over v's row. A self-loop contributes its weight once.
func (g *Graph[V, I]) Degree(v V) float64 {
	lo, hi := g.Row(v)
	if lo == hi {
		return 0
	}

	return floats.Sum(g.Weight[lo:hi])
}

// Degrees returns the weighted degree of every vertex, indexed by zero-based
// id. The result is suitable for sweep.WithDegrees.
func (g *Graph[V, I]) Degrees() []float64 {
	out := make([]float64, int(g.N))
	for v := V(0); v < g.N; v++ {
		out[v] = g.Degree(v)
	}

	return out
}

// TotalVolume returns the sum of all stored edge weights, which equals the
// sum of all vertex degrees.
func (g *Graph[V, I]) TotalVolume() float64 {
	nnz := g.NumEdges()
	if nnz == 0 {
		return 0
	}

	return floats.Sum(g.Weight[:nnz])
}
