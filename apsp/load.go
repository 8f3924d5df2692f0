// SPDX-License-Identifier: MIT
// Package apsp: adjacency loading.
//
// Input format (whitespace-delimited integers):
//
//	n
//	a[0][0] a[0][1] ... a[0][n-1]
//	...
//	a[n-1][0] ... a[n-1][n-1]
//
// Line breaks carry no meaning; only the token order does. Tokens after the
// n*n-th weight are ignored.

package apsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

const (
	opLoadMatrix = "LoadMatrix"
	opLoadFile   = "LoadFile"
)

// maxPrealloc caps the up-front allocation in LoadMatrix (in elements).
const maxPrealloc = 1 << 20

// DefaultSource is the input file used when no path is given.
const DefaultSource = "apspp.dat"

// LoadMatrix reads n followed by n*n row-major weights from src.
//
// Errors:
//   - ErrMalformedInput  if n is not a positive integer, fewer than 1+n*n
//     tokens are present, or a token is not a 32-bit integer (including a
//     token too long to scan).
//   - ErrSourceUnavailable if reading src fails for a reason other than EOF.
//
// Nothing is returned on failure; there is no partially populated matrix.
func LoadMatrix(src io.Reader) (*Adjacency, error) {
	sc := bufio.NewScanner(src)
	sc.Split(bufio.ScanWords)

	// next returns the following token as an int64 within 32-bit range;
	// what is only evaluated on failure to keep the hot loop allocation-free.
	next := func(what func() string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
				return 0, fmt.Errorf("%s: %w: %s token exceeds %d bytes", opLoadMatrix, ErrMalformedInput, what(), bufio.MaxScanTokenSize)
			} else if err != nil {
				return 0, fmt.Errorf("%s: %w: %v", opLoadMatrix, ErrSourceUnavailable, err)
			}
			return 0, fmt.Errorf("%s: %w: unexpected end of input reading %s", opLoadMatrix, ErrMalformedInput, what())
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %s %q is not a 32-bit integer", opLoadMatrix, ErrMalformedInput, what(), sc.Text())
		}

		return v, nil
	}

	dim, err := next(func() string { return "dimension" })
	if err != nil {
		return nil, err
	}
	if dim <= 0 {
		return nil, fmt.Errorf("%s: %w: dimension %d must be > 0", opLoadMatrix, ErrMalformedInput, dim)
	}

	// Grow the buffer as tokens arrive so that a huge declared n backed by
	// a short stream fails with ErrMalformedInput instead of exhausting memory.
	n := int(dim)
	data := make([]int64, 0, min(n*n, maxPrealloc))
	var (
		i, j int
		v    int64
	)
	cell := func() string { return fmt.Sprintf("a[%d][%d]", i, j) }
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = next(cell); err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return &Adjacency{n: n, data: data}, nil
}

// LoadFile opens path, loads the matrix and, on success, echoes it to echo
// in the fixed-width layout of FormatAdjacency. A nil echo disables the echo.
//
// Errors:
//   - ErrSourceUnavailable if path cannot be opened; the message names path
//     and the cause.
//   - Any error from LoadMatrix.
func LoadFile(path string, echo io.Writer) (*Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err // path is already in the message
		}
		return nil, fmt.Errorf("%w: cannot open: %s (%v)", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	a, err := LoadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoadFile, path, err)
	}

	if echo != nil {
		if _, err = io.WriteString(echo, FormatAdjacency(a)); err != nil {
			return nil, apspErrorf(opLoadFile, err)
		}
	}

	return a, nil
}
