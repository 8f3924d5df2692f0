// SPDX-License-Identifier: MIT
// Package apsp: dense matrix types.
//
// Adjacency and Distances are row-major n×n int64 buffers addressed as i*n+j.
// Using one contiguous slice per matrix keeps rows cache-friendly and avoids
// per-row allocations.

package apsp

import "math"

const (
	// NoEdge marks the absence of a direct edge i→j in an Adjacency.
	NoEdge int64 = -1

	// Inf marks an unreachable pair in Distances.
	// The relaxation never adds to Inf, so it cannot overflow.
	Inf int64 = math.MaxInt64
)

// Adjacency is the read-only input graph: n×n edge weights, NoEdge for
// missing edges. Diagonal entries are kept as loaded.
type Adjacency struct {
	n    int
	data []int64 // len == n*n
}

// NewAdjacency wraps a row-major slice of n*n weights.
// The slice is copied; later changes to rows do not affect the result.
//
// Errors: ErrMalformedInput if n <= 0 or len(rows) != n*n.
func NewAdjacency(n int, rows []int64) (*Adjacency, error) {
	if n <= 0 {
		return nil, apspErrorf("NewAdjacency", ErrMalformedInput)
	}
	if len(rows) != n*n {
		return nil, apspErrorf("NewAdjacency", ErrMalformedInput)
	}
	data := make([]int64, n*n)
	copy(data, rows)

	return &Adjacency{n: n, data: data}, nil
}

// N returns the number of vertices.
func (a *Adjacency) N() int { return a.n }

const (
	opAt  = "At"
	opSet = "Set"
)

// indexOf maps (i, j) to the flat offset i*n+j after a bounds check.
func indexOf(n, i, j int) (int, bool) {
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, false
	}

	return i*n + j, true
}

// At returns the weight of i→j, or NoEdge.
// Returns ErrOutOfRange if i or j is outside [0, N()).
func (a *Adjacency) At(i, j int) (int64, error) {
	k, ok := indexOf(a.n, i, j)
	if !ok {
		return 0, apspErrorf(opAt, ErrOutOfRange)
	}

	return a.data[k], nil
}

// HasEdge reports whether a direct edge i→j exists.
// Out-of-range indices have no edge.
func (a *Adjacency) HasEdge(i, j int) bool {
	k, ok := indexOf(a.n, i, j)

	return ok && a.data[k] != NoEdge
}

// Distances is the n×n shortest-distance matrix; Inf marks unreachable pairs.
type Distances struct {
	n    int
	data []int64 // len == n*n
}

// NewDistances allocates an n×n matrix with 0 on the diagonal and Inf elsewhere.
// Returns ErrMalformedInput if n <= 0.
func NewDistances(n int) (*Distances, error) {
	if n <= 0 {
		return nil, apspErrorf("NewDistances", ErrMalformedInput)
	}
	d := &Distances{n: n, data: make([]int64, n*n)}
	for i := range d.data {
		d.data[i] = Inf
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d, nil
}

// N returns the number of vertices.
func (d *Distances) N() int { return d.n }

// At returns the current distance i→j (Inf if unreachable).
// Returns ErrOutOfRange if i or j is outside [0, N()).
func (d *Distances) At(i, j int) (int64, error) {
	k, ok := indexOf(d.n, i, j)
	if !ok {
		return 0, apspErrorf(opAt, ErrOutOfRange)
	}

	return d.data[k], nil
}

// Set stores the distance i→j.
// Returns ErrOutOfRange if i or j is outside [0, N()).
func (d *Distances) Set(i, j int, v int64) error {
	k, ok := indexOf(d.n, i, j)
	if !ok {
		return apspErrorf(opSet, ErrOutOfRange)
	}
	d.data[k] = v

	return nil
}

// Reachable reports whether j is reachable from i.
// Out-of-range indices are unreachable.
func (d *Distances) Reachable(i, j int) bool {
	k, ok := indexOf(d.n, i, j)

	return ok && d.data[k] != Inf
}

// Rows returns a copy of the matrix as a slice of rows.
func (d *Distances) Rows() [][]int64 {
	out := make([][]int64, d.n)
	for i := 0; i < d.n; i++ {
		row := make([]int64, d.n)
		copy(row, d.data[i*d.n:(i+1)*d.n])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy.
func (d *Distances) Clone() *Distances {
	data := make([]int64, len(d.data))
	copy(data, d.data)

	return &Distances{n: d.n, data: data}
}

// Equal reports whether two matrices have the same shape and values.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for i, v := range d.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// NegativeCycle reports whether any diagonal entry is negative.
// After RelaxAllPairs this happens exactly when some vertex lies on a
// negative-weight cycle; such inputs are unsupported and the rest of the
// matrix is then meaningless.
func (d *Distances) NegativeCycle() bool {
	for i := 0; i < d.n; i++ {
		if d.data[i*d.n+i] < 0 {
			return true
		}
	}

	return false
}
