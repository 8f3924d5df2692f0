// Package apsp computes all-pairs shortest paths over a dense, weighted,
// possibly directed graph given as an adjacency matrix.
//
// 🚀 What does it do?
//
//	Given n and an n×n weight matrix where -1 means "no direct edge", apsp
//	builds the starting distance matrix and runs the Floyd–Warshall
//	relaxation to produce the shortest distance between every ordered pair.
//	Typical use is turning a road/link matrix into distance-based
//	transportation costs for a downstream model.
//
// ✨ Key features:
//   - flat row-major int64 storage (index i*n+j), no per-row allocations
//   - skip-on-Inf relaxation: unreachable pairs never enter an addition
//   - optional worker fan-out for the inner loops with a per-k barrier
//   - optional successor matrix and Path reconstruction
//   - export to gonum graphs for interop with gonum/graph/path
//   - fixed-width text rendering (width 7, INF for unreachable)
//
// ⚙️ Usage:
//
//	adj, err := apsp.LoadFile("apspp.dat", os.Stdout) // echoes the matrix
//	if err != nil {
//	    return err
//	}
//	res, err := apsp.Solve(adj, apsp.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	fmt.Print(apsp.Format(res.Dist))
//
// The steps are also exposed separately: LoadMatrix, BuildInitialDistances,
// RelaxAllPairs and Format.
//
// Numeric policy:
//
//	Weights loaded from text must fit in int32; distances are int64 and Inf
//	is math.MaxInt64. A shortest simple path has at most n-1 edges, so every
//	finite distance stays below (n-1)·2^31, far from overflow for any n that
//	fits in memory.
//
// Negative weights are accepted. Negative cycles are NOT supported: the
// result is undefined, although Distances.NegativeCycle reports the symptom.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²)
package apsp
