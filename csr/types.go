// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// types.go - Graph, Edge, the Integer constraint and the sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach method context with fmt.Errorf("%s: ...: %w").
//   - Read paths (Degree, Row, TotalVolume) never validate; they assume a
//     well-formed graph and have undefined results otherwise.

package csr

import "errors"

// Integer is the set of index types a Graph may use for vertex ids and row
// offsets. Mixing widths (e.g. uint32 ids with int64 offsets) is supported.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64
}

// Graph is an immutable CSR adjacency structure over N vertices.
//
// Invariants (checked by Validate, assumed everywhere else):
//   - len(RowStart) == N+1 and RowStart is non-decreasing;
//   - RowStart[N]-Base == len(ColIndex) == len(Weight);
//   - every ColIndex entry lies in [Base, Base+N);
//   - Base is 0 or 1.
//
// Undirected graphs store each edge in both endpoint rows; a self-loop is
// stored once in its own row.
type Graph[V, I Integer] struct {
	// N is the number of vertices.
	N V

	// RowStart holds N+1 offsets into ColIndex/Weight, shifted by Base.
	RowStart []I

	// ColIndex holds the neighbour id of each stored edge, shifted by Base.
	ColIndex []V

	// Weight holds the weight of each stored edge.
	Weight []float64

	// Base is the indexing convention: 0 for zero-based, 1 for one-based.
	Base V
}

// Edge is a weighted (From, To) pair in the caller's id convention.
type Edge[V Integer] struct {
	From   V
	To     V
	Weight float64
}

// Sentinel errors for CSR construction and validation.
var (
	// ErrNilGraph is returned when a nil *Graph is supplied.
	ErrNilGraph = errors.New("csr: graph is nil")

	// ErrBadBase indicates a Base other than 0 or 1.
	ErrBadBase = errors.New("csr: base offset must be 0 or 1")

	// ErrBadSize indicates a negative vertex count.
	ErrBadSize = errors.New("csr: invalid vertex count")

	// ErrRowStartLength indicates len(RowStart) != N+1.
	ErrRowStartLength = errors.New("csr: row offsets length must be N+1")

	// ErrNonMonotoneRow indicates RowStart[v] > RowStart[v+1] for some v,
	// or an offset below Base.
	ErrNonMonotoneRow = errors.New("csr: row offsets are not monotone")

	// ErrEdgeCount indicates RowStart[N]-Base disagrees with len(ColIndex)
	// or len(Weight).
	ErrEdgeCount = errors.New("csr: edge array length mismatch")

	// ErrColumnOutOfRange indicates a ColIndex entry outside [Base, Base+N).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("csr: edge weight is NaN or Inf")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("csr: edge weight is negative")

	// ErrVertexOutOfRange indicates a vertex id outside [Base, Base+N).
	ErrVertexOutOfRange = errors.New("csr: vertex id out of range")

	// ErrDuplicateCandidate indicates the same id appears twice in a
	// candidate sequence.
	ErrDuplicateCandidate = errors.New("csr: duplicate candidate id")

	// ErrTooFewVertices indicates a generator parameter below its minimum.
	ErrTooFewVertices = errors.New("csr: parameter too small")
)
