package sweep

import "github.com/katalvlaran/sweepcut/csr"

// ranker records 1-based candidate positions keyed by zero-based vertex id.
// rank returns 0 for a vertex that is not a candidate.
type ranker[V csr.Integer] interface {
	set(v V, r int)
	rank(v V) int
}

// denseRank is a flat table over all N vertices.
type denseRank[V csr.Integer] []int

func (d denseRank[V]) set(v V, r int) { d[v] = r }
func (d denseRank[V]) rank(v V) int   { return d[v] }

// hashRank holds only the candidates.
type hashRank[V csr.Integer] map[V]int

func (h hashRank[V]) set(v V, r int) { h[v] = r }
func (h hashRank[V]) rank(v V) int   { return h[v] }

// newRanker allocates the table for one sweep over n vertices and k candidates.
func newRanker[V csr.Integer](kind RankMap, n, k int) ranker[V] {
	if kind == RankHash {
		return make(hashRank[V], k)
	}

	return make(denseRank[V], n)
}
