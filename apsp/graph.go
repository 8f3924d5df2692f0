// SPDX-License-Identifier: MIT
// Package apsp: export to gonum graphs.

package apsp

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// WeightedGraph exports a as a gonum weighted directed graph.
//
// Node IDs are vertex indices 0..n-1; every vertex is present even when
// isolated. Each off-diagonal weight other than NoEdge becomes an edge.
// Self-loops are dropped: the distance model fixes the diagonal at 0.
// Absent pairs report +Inf through the graph's Weight method.
//
// Complexity: O(n²).
func (a *Adjacency) WeightedGraph() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	if a == nil {
		return g
	}

	var i, j int
	for i = 0; i < a.n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i = 0; i < a.n; i++ {
		for j = 0; j < a.n; j++ {
			w := a.data[i*a.n+j]
			if i == j || w == NoEdge {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(int64(i)), simple.Node(int64(j)), float64(w)))
		}
	}

	return g
}
