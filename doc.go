// Package apspp turns a dense road/link matrix into all-pairs shortest
// distances, the usual first step when deriving distance-based
// transportation costs.
//
// Layout:
//
//	apsp/       — the engine: load, initial distances, Floyd–Warshall
//	              relaxation (sequential or fanned out), paths, rendering
//	cmd/apspp/  — command-line front end (cobra + klog)
//
// Quick start:
//
//	go run ./cmd/apspp cmd/apspp/testdata/apspp.dat
package apspp
