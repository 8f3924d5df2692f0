// SPDX-License-Identifier: MIT
// Package apsp_test contains shared fixtures for the apsp tests.
//
// Purpose:
//   - Build adjacency fixtures from readable [][]int64 literals.
//   - Generate deterministic random graphs with NoEdge sentinels.
//   - Provide an exhaustive simple-path oracle for small graphs.

package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apspp/apsp"
)

// inf is a short local alias for readability in expected matrices.
const inf = apsp.Inf

// mustAdjacency flattens rows into an *apsp.Adjacency or fails the test.
func mustAdjacency(t testing.TB, rows [][]int64) *apsp.Adjacency {
	t.Helper()

	n := len(rows)
	flat := make([]int64, 0, n*n)
	for _, r := range rows {
		require.Len(t, r, n, "fixture must be square")
		flat = append(flat, r...)
	}
	a, err := apsp.NewAdjacency(n, flat)
	require.NoError(t, err)

	return a
}

// mustSolve runs build + relax with opts and returns the distances.
func mustSolve(t testing.TB, a *apsp.Adjacency, opts ...apsp.Option) *apsp.Distances {
	t.Helper()

	d := apsp.BuildInitialDistances(a)
	require.NoError(t, apsp.RelaxAllPairs(d, opts...))

	return d
}

// weight reads a.At(i, j) or fails the test.
func weight(t testing.TB, a *apsp.Adjacency, i, j int) int64 {
	t.Helper()

	w, err := a.At(i, j)
	require.NoError(t, err)

	return w
}

// dist reads d.At(i, j) or fails the test.
func dist(t testing.TB, d *apsp.Distances, i, j int) int64 {
	t.Helper()

	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// randomAdjacency returns an n×n adjacency where each off-diagonal pair is
// NoEdge with probability pMissing, otherwise a weight in [0, maxW].
// The diagonal gets random values (including NoEdge) to exercise the override.
func randomAdjacency(rng *rand.Rand, n int, pMissing float64, maxW int64) *apsp.Adjacency {
	flat := make([]int64, n*n)
	for i := range flat {
		if rng.Float64() < pMissing {
			flat[i] = apsp.NoEdge
			continue
		}
		flat[i] = rng.Int63n(maxW + 1)
	}
	a, err := apsp.NewAdjacency(n, flat)
	if err != nil {
		panic(err) // n > 0 and len(flat) == n*n by construction
	}

	return a
}

// bruteForce enumerates every simple path i→j and returns the minimum total
// weight, or inf if none exists. Valid for non-negative weights only,
// where some shortest path is always simple. O(n!) per pair; keep n ≤ 8.
func bruteForce(a *apsp.Adjacency) [][]int64 {
	n := a.N()
	out := make([][]int64, n)
	visited := make([]bool, n)

	var walk func(u, target int, acc int64, best *int64)
	walk = func(u, target int, acc int64, best *int64) {
		if u == target {
			if acc < *best {
				*best = acc
			}
			return
		}
		for v := 0; v < n; v++ {
			if visited[v] || v == u || !a.HasEdge(u, v) {
				continue
			}
			visited[v] = true
			w, _ := a.At(u, v)
			walk(v, target, acc+w, best)
			visited[v] = false
		}
	}

	for i := 0; i < n; i++ {
		out[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				out[i][j] = 0
				continue
			}
			best := inf
			visited[i] = true
			walk(i, j, 0, &best)
			visited[i] = false
			out[i][j] = best
		}
	}

	return out
}
