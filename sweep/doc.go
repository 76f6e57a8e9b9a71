// Package sweep extracts the minimum-conductance prefix of an ordered vertex
// list over a CSR graph, the "sweep cut" that turns a diffusion score vector
// (e.g. personalized PageRank) into a cluster.
//
// 🚀 What is a sweep cut?
//
//	Given candidates v₁, v₂, …, v_k in some order, every prefix
//	S_i = {v₁ … v_i} is a candidate cluster. Its conductance is
//
//	    φ(S_i) = cut(S_i) / min(vol(S_i), vol(V) − vol(S_i))
//
//	where cut is the weight leaving S_i and vol the sum of weighted degrees.
//	The sweep evaluates all k prefixes in one linear pass and keeps the best.
//
// ✨ Key features:
//   - Sweep / SweepInto: sweep a caller-supplied ordering
//   - SweepSorted: order by score (descending) first, then sweep
//   - Order: the score sort on its own
//   - Profile: per-prefix cut, volume and conductance
//   - Conductance: direct evaluation of one vertex set, for cross-checks
//   - Batch: many independent sweeps over one shared graph, bounded fan-out
//   - generic over id and offset width through csr.Graph[V, I]
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/sweepcut/csr"
//	    "github.com/katalvlaran/sweepcut/sweep"
//	)
//
//	res, err := sweep.SweepSorted(g, scores, ids)
//	if err != nil {
//	    // ErrNoCandidates, ErrLengthMismatch, ErrVertexOutOfRange, ...
//	}
//	fmt.Println(res.Length, res.Conductance, res.Vertices)
//
// Conventions:
//
//   - Candidate and result ids use the graph's Base; the optional degree
//     vector is indexed by zero-based id.
//   - When several prefixes share the minimum conductance the shortest wins.
//   - A prefix whose volume is 0, or equals the total volume, has conductance 1.
//
// Preconditions not checked here: a well-formed CSR (see csr.Validate),
// distinct candidate ids (see csr.CheckCandidates), non-negative weights and a
// degree vector that matches the row sums. Violations give meaningless
// conductance values, not errors.
//
// Performance:
//
//   - Time:   O(k + Σ deg(v) over candidates), plus O(k log k) for SweepSorted
//   - Memory: O(N) for the dense rank map or O(k) for the hash rank map
//
// Every call owns its rank map and output, so calls may run concurrently on a
// shared graph.
package sweep
