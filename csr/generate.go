// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// generate.go - deterministic unit-weight generators.
//
// Every generator:
//   - builds an undirected, zero-based graph with unit weights;
//   - emits edges in a fixed order (ascending by construction index);
//   - returns ErrTooFewVertices (wrapped with the method tag) on a parameter
//     below its minimum, never panics.

package csr

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodBarbell  = "Barbell"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridSide      = 1
	minBarbellClique = 2
)

// Path returns P_n: 0-1-2-...-(n-1).
func Path[V, I Integer](n int) (*Graph[V, I], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	edges := make([]Edge[V], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, unit[V](i-1, i))
	}

	return FromEdges[V, I](V(n), 0, edges, true)
}

// Cycle returns C_n: a path closed by the edge (n-1, 0).
func Cycle[V, I Integer](n int) (*Graph[V, I], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([]Edge[V], 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, unit[V](i-1, i))
	}
	edges = append(edges, unit[V](n-1, 0))

	return FromEdges[V, I](V(n), 0, edges, true)
}

// Star returns a hub 0 joined to leaves 1..n-1.
func Star[V, I Integer](n int) (*Graph[V, I], error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]Edge[V], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, unit[V](0, i))
	}

	return FromEdges[V, I](V(n), 0, edges, true)
}

// Complete returns K_n.
func Complete[V, I Integer](n int) (*Graph[V, I], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	return FromEdges[V, I](V(n), 0, cliqueEdges[V](0, n), true)
}

// Grid returns a rows×cols 4-neighbour lattice; vertex (r, c) has id r*cols+c.
func Grid[V, I Integer](rows, cols int) (*Graph[V, I], error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
			methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
	}
	edges := make([]Edge[V], 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, unit[V](id, id+1))
			}
			if r+1 < rows {
				edges = append(edges, unit[V](id, id+cols))
			}
		}
	}

	return FromEdges[V, I](V(rows*cols), 0, edges, true)
}

// Barbell returns two copies of K_k, vertices [0,k) and [k,2k), joined by the
// single bridge (k-1, k).
func Barbell[V, I Integer](k int) (*Graph[V, I], error) {
	if k < minBarbellClique {
		return nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodBarbell, k, minBarbellClique, ErrTooFewVertices)
	}
	edges := cliqueEdges[V](0, k)
	edges = append(edges, cliqueEdges[V](k, k)...)
	edges = append(edges, unit[V](k-1, k))

	return FromEdges[V, I](V(2*k), 0, edges, true)
}

// cliqueEdges lists every pair {i, j} with first <= i < j < first+k.
func cliqueEdges[V Integer](first, k int) []Edge[V] {
	edges := make([]Edge[V], 0, k*(k-1)/2)
	for i := first; i < first+k; i++ {
		for j := i + 1; j < first+k; j++ {
			edges = append(edges, unit[V](i, j))
		}
	}

	return edges
}

func unit[V Integer](u, v int) Edge[V] {
	return Edge[V]{From: V(u), To: V(v), Weight: 1}
}
