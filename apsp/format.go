// SPDX-License-Identifier: MIT
// Package apsp: fixed-width text rendering.
//
// Presentation only; the relaxation never calls into this file.

package apsp

import (
	"fmt"
	"strings"
)

// Banner precedes the distance matrix in the CLI output.
const Banner = "The following matrix shows the shortest distances between every pair of vertices"

// cellWidth is the right-aligned field width of every rendered value.
const cellWidth = 7

// infToken renders an Inf cell.
const infToken = "INF"

// FormatAdjacency renders the loaded weights, one row per line, each value
// right-aligned in a 7-wide field. NoEdge prints as -1.
func FormatAdjacency(a *Adjacency) string {
	if a == nil {
		return ""
	}

	return render(a.n, a.data, false)
}

// Format renders the distance matrix like FormatAdjacency, printing INF for
// unreachable pairs.
func Format(d *Distances) string {
	if d == nil {
		return ""
	}

	return render(d.n, d.data, true)
}

func render(n int, data []int64, inf bool) string {
	var sb strings.Builder
	sb.Grow(n * (n*cellWidth + 1))

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := data[i*n+j]
			if inf && v == Inf {
				fmt.Fprintf(&sb, "%*s", cellWidth, infToken)
				continue
			}
			fmt.Fprintf(&sb, "%*d", cellWidth, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
