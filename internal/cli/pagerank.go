package cli

import (
	"gonum.org/v1/gonum/graph/network"

	"github.com/katalvlaran/sweepcut/csr"
)

// pageRank computes global PageRank over g, keyed by zero-based vertex id.
// Every stored entry becomes a directed edge, so a symmetric graph behaves
// as undirected.
func pageRank(g *csr.Graph[int64, int64], cfg PageRankConfig) map[int64]float64 {
	return network.PageRankSparse(g.ToGonumDirected(), cfg.Damping, cfg.Tolerance)
}

// scoresFor aligns ranks with a candidate list given in g's base.
func scoresFor(g *csr.Graph[int64, int64], ranks map[int64]float64, ids []int64) []float64 {
	scores := make([]float64, len(ids))
	for i, id := range ids {
		scores[i] = ranks[id-g.Base]
	}

	return scores
}
