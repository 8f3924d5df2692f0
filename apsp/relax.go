// SPDX-License-Identifier: MIT
// Package apsp: Floyd–Warshall relaxation.
//
// Contract:
//   - Inf means "no path"; the diagonal is 0 (BuildInitialDistances).
//   - Loop order is fixed k → i → j; k MUST stay outermost. After finishing
//     intermediate k, D[i][j] is optimal over intermediates {0..k}.
//   - A candidate through k is skipped when D[i][k] or D[k][j] is Inf, so
//     Inf never takes part in an addition.

package apsp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const opRelaxAllPairs = "RelaxAllPairs"

// RelaxAllPairs runs the all-pairs relaxation on d in place.
//
// Options:
//   - WithWorkers(w): split the i-rows across w goroutines for each k,
//     with a barrier before k+1. Same result as the sequential run.
//   - WithContext(ctx): abort between intermediate vertices on cancellation.
//
// WithReturnPath has no effect here; use Solve to obtain paths.
//
// Negative edge weights are accepted, negative cycles are not supported:
// the result is undefined (see Distances.NegativeCycle) and entries can run
// toward math.MinInt64, but the call does not panic.
//
// Complexity: Time O(n³), extra space O(1) sequential, O(n) parallel.
func RelaxAllPairs(d *Distances, opts ...Option) error {
	if d == nil {
		return apspErrorf(opRelaxAllPairs, ErrNilMatrix)
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return apspErrorf(opRelaxAllPairs, err)
	}

	return relax(cfg, d, nil)
}

// relax dispatches to the sequential or parallel kernel.
// next may be nil; when set it is updated alongside the distances.
func relax(cfg Options, d *Distances, next []int) error {
	if cfg.Workers > 1 && d.n > 1 {
		return relaxParallel(cfg.Ctx, cfg.Workers, d, next)
	}

	return relaxSequential(cfg.Ctx, d, next)
}

// relaxSequential is the canonical single-goroutine kernel.
func relaxSequential(ctx context.Context, d *Distances, next []int) error {
	n := d.n
	data := d.data

	var k int
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Row k is read in place, exactly as the textbook kernel does.
		relaxRows(data, data[k*n:(k+1)*n], next, n, k, 0, n)
	}

	return nil
}

// relaxParallel splits rows [0,n) into contiguous chunks per worker.
// For a fixed k each worker writes only its own rows; row k is copied to
// rowK first so no worker reads a row another worker writes.
func relaxParallel(ctx context.Context, workers int, d *Distances, next []int) error {
	n := d.n
	data := d.data
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	rowK := make([]int64, n)

	var k int
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		copy(rowK, data[k*n:(k+1)*n])

		g, gctx := errgroup.WithContext(ctx)
		for lo := 0; lo < n; lo += chunk {
			lo := lo
			hi := min(lo+chunk, n)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				relaxRows(data, rowK, next, n, k, lo, hi)
				return nil
			})
		}
		// Barrier: every row must see intermediate k before k+1 starts.
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// relaxRows relaxes rows [lo,hi) through intermediate k.
// rowK holds D[k][*]; it may alias data in the sequential kernel.
func relaxRows(data, rowK []int64, next []int, n, k, lo, hi int) {
	var (
		i, j, baseI int
		ik, kj      int64
		cand        int64
	)
	for i = lo; i < hi; i++ {
		baseI = i * n
		ik = data[baseI+k]
		if ik == Inf { // i cannot reach k
			continue
		}
		for j = 0; j < n; j++ {
			kj = rowK[j]
			if kj == Inf { // k cannot reach j
				continue
			}
			cand = ik + kj
			if cand < data[baseI+j] { // strict improvement only
				data[baseI+j] = cand
				if next != nil {
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}
