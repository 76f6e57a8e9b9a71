// SPDX-License-Identifier: MIT
// Package: sweepcut/csr
//
// gonum.go - conversion to and from gonum graph values.
//
// Mapping:
//   - FromGonum orders gonum nodes by ascending ID and assigns dense
//     zero-based ids in that order; the returned slice maps dense id -> node ID.
//   - ToGonum / ToGonumDirected use the zero-based id as the gonum node ID.
//   - gonum simple graphs reject self-loops, so loops are skipped on export.

package csr

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGonum converts an undirected weighted gonum graph into a zero-based
// symmetric CSR graph. nodeIDs[v] is the gonum ID of dense vertex v.
func FromGonum(g graph.WeightedUndirected) (csrGraph *Graph[int64, int64], nodeIDs []int64, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, func(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) })

	nodeIDs = make([]int64, len(nodes))
	dense := make(map[int64]int64, len(nodes))
	for i, n := range nodes {
		nodeIDs[i] = n.ID()
		dense[n.ID()] = int64(i)
	}

	rowStart := make([]int64, len(nodes)+1)
	var (
		colIndex []int64
		weight   []float64
	)
	for i, n := range nodes {
		nbrs := graph.NodesOf(g.From(n.ID()))
		slices.SortFunc(nbrs, func(a, b graph.Node) int { return cmp.Compare(dense[a.ID()], dense[b.ID()]) })
		for _, m := range nbrs {
			w, _ := g.Weight(n.ID(), m.ID())
			colIndex = append(colIndex, dense[m.ID()])
			weight = append(weight, w)
		}
		rowStart[i+1] = int64(len(colIndex))
	}

	csrGraph, err = New(int64(len(nodes)), rowStart, colIndex, weight, 0)
	if err != nil {
		return nil, nil, err
	}

	return csrGraph, nodeIDs, nil
}

// ToGonum exports g as an undirected weighted gonum graph. g is assumed
// symmetric; each unordered pair is taken from the row of its smaller
// endpoint.
func (g *Graph[V, I]) ToGonum() *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := V(0); v < g.N; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for v := V(0); v < g.N; v++ {
		lo, hi := g.Row(v)
		for j := lo; j < hi; j++ {
			if u := g.Neighbor(j); u > v {
				out.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(int64(v)),
					T: simple.Node(int64(u)),
					W: g.Weight[j],
				})
			}
		}
	}

	return out
}

// ToGonumDirected exports every stored non-loop entry (v, u) as a directed
// edge v→u. Used where gonum expects graph.Directed, e.g. PageRank.
func (g *Graph[V, I]) ToGonumDirected() *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := V(0); v < g.N; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for v := V(0); v < g.N; v++ {
		lo, hi := g.Row(v)
		for j := lo; j < hi; j++ {
			if u := g.Neighbor(j); u != v {
				out.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(int64(v)),
					T: simple.Node(int64(u)),
					W: g.Weight[j],
				})
			}
		}
	}

	return out
}
