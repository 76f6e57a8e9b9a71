// Package csr holds the immutable compressed-sparse-row graph consumed by the
// sweep engine, together with the helpers built around it.
//
// 🚀 What is CSR?
//
//	A graph over N vertices is stored as three flat arrays:
//	  • RowStart[0..N] - offsets into the edge arrays, non-decreasing
//	  • ColIndex[]     - neighbour id per stored edge
//	  • Weight[]       - non-negative weight per stored edge
//	Row v owns the half-open edge range [RowStart[v]-Base, RowStart[v+1]-Base).
//
// ✨ Key features:
//   - one generic type Graph[V, I] for every index width: 32- or 64-bit vertex
//     ids (V) and, independently, 32- or 64-bit row offsets (I)
//   - a single Base (0 or 1) applied uniformly to RowStart, ColIndex and every
//     vertex id crossing the API
//   - weighted degree, degree vector and total volume helpers
//   - Validate for callers that receive CSR from untrusted producers
//   - FromEdges, WithBase and small deterministic generators (Path, Cycle,
//     Star, Complete, Grid, Barbell)
//   - gonum interop: FromGonum, ToGonum, ToGonumDirected
//   - CheckCandidates: duplicate / range detection for candidate sets
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sweepcut/csr"
//
//	g := &csr.Graph[int64, int64]{
//	    N:        4,
//	    RowStart: []int64{0, 1, 3, 5, 6},
//	    ColIndex: []int64{1, 0, 2, 1, 3, 2},
//	    Weight:   []float64{1, 1, 1, 1, 1, 1},
//	}
//	if err := g.Validate(); err != nil {
//	    // handle ErrRowStartLength, ErrColumnOutOfRange, ...
//	}
//	fmt.Println(g.Degree(1), g.TotalVolume()) // 2 6
//
// Graph values are read-only after construction and may be shared between
// goroutines without locking.
package csr
