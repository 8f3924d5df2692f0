// SPDX-License-Identifier: MIT
// Package apsp: sentinel error set.
//
// Every algorithm in this package returns one of these sentinels, possibly
// wrapped with operation context via apspErrorf. Callers and tests match them
// with errors.Is. User-triggered conditions never panic.

package apsp

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable indicates the input source could not be opened or read.
	ErrSourceUnavailable = errors.New("apsp: source unavailable")

	// ErrMalformedInput indicates a bad dimension, a short token stream,
	// or a token that is not a 32-bit integer.
	ErrMalformedInput = errors.New("apsp: malformed input")

	// ErrNilMatrix indicates a nil *Adjacency or *Distances was passed in.
	ErrNilMatrix = errors.New("apsp: nil matrix")

	// ErrBadWorkers indicates WithWorkers received a value below 1.
	ErrBadWorkers = errors.New("apsp: workers must be >= 1")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("apsp: vertex index out of range")

	// ErrNoPath indicates the target vertex is unreachable from the source.
	ErrNoPath = errors.New("apsp: no path between vertices")

	// ErrPathNotTracked indicates Path was called on a Result solved
	// without WithReturnPath.
	ErrPathNotTracked = errors.New("apsp: successor matrix not tracked")
)

// apspErrorf prefixes err with an operation tag, keeping it matchable by errors.Is.
func apspErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
