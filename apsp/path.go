// SPDX-License-Identifier: MIT
// Package apsp: one-call solve and path recovery.

package apsp

const (
	opSolve = "Solve"
	opPath  = "Path"
)

// Result bundles the distance matrix with the optional successor matrix.
//
// Next is row-major like Dist: Next[i*n+j] is the vertex following i on a
// shortest i→j path, or -1 if j is unreachable. It is nil unless Solve ran
// with WithReturnPath.
type Result struct {
	Dist *Distances
	Next []int
}

// Solve builds the initial distances from a and relaxes them.
//
// Example:
//
//	res, err := apsp.Solve(adj, apsp.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	p, _ := res.Path(0, 2) // e.g. [0 1 2]
func Solve(a *Adjacency, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, apspErrorf(opSolve, ErrNilMatrix)
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, apspErrorf(opSolve, err)
	}

	res := &Result{Dist: BuildInitialDistances(a)}
	if cfg.ReturnPath {
		res.Next = initSuccessors(res.Dist)
	}
	if err = relax(cfg, res.Dist, res.Next); err != nil {
		return nil, apspErrorf(opSolve, err)
	}

	return res, nil
}

// Path returns the vertex sequence of a shortest path from i to j, both
// endpoints included. Path(i, i) is [i].
//
// Errors:
//   - ErrPathNotTracked if Solve ran without WithReturnPath.
//   - ErrOutOfRange     if i or j is outside [0, n).
//   - ErrNoPath         if j is unreachable from i.
//
// With a negative cycle on the way the successor chain may loop; the walk
// is bounded by n steps and reports ErrNoPath in that case.
func (r *Result) Path(i, j int) ([]int, error) {
	if r == nil || r.Dist == nil {
		return nil, apspErrorf(opPath, ErrNilMatrix)
	}
	if r.Next == nil {
		return nil, apspErrorf(opPath, ErrPathNotTracked)
	}
	n := r.Dist.n
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, apspErrorf(opPath, ErrOutOfRange)
	}
	if r.Dist.data[i*n+j] == Inf {
		return nil, apspErrorf(opPath, ErrNoPath)
	}

	path := []int{i}
	for u := i; u != j; {
		u = r.Next[u*n+j]
		if u < 0 || len(path) > n {
			return nil, apspErrorf(opPath, ErrNoPath)
		}
		path = append(path, u)
	}

	return path, nil
}
