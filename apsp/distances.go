// SPDX-License-Identifier: MIT
// Package apsp: adjacency → initial distance matrix.

package apsp

// BuildInitialDistances converts an adjacency into the starting distance matrix:
//
//	a[i][j] == NoEdge -> Inf
//	otherwise         -> a[i][j]
//	diagonal          -> 0, always
//
// The diagonal override discards any loaded self-weight, including NoEdge and
// negative values: a vertex is at distance zero from itself by definition.
// A nil adjacency yields nil.
// Complexity: O(n²).
func BuildInitialDistances(a *Adjacency) *Distances {
	if a == nil {
		return nil
	}
	n := a.n
	d := &Distances{n: n, data: make([]int64, n*n)}

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if a.data[base+j] == NoEdge {
				d.data[base+j] = Inf
				continue
			}
			d.data[base+j] = a.data[base+j]
		}
		d.data[base+i] = 0
	}

	return d
}

// initSuccessors builds the successor matrix matching BuildInitialDistances:
// next[i][j] = j for a direct edge, next[i][i] = i, -1 when unreachable.
func initSuccessors(d *Distances) []int {
	n := d.n
	next := make([]int, n*n)

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				next[base+j] = i
			case d.data[base+j] == Inf:
				next[base+j] = -1
			default:
				next[base+j] = j
			}
		}
	}

	return next
}
