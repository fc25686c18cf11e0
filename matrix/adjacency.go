// SPDX-License-Identifier: MIT

// Package matrix - Adjacency storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold a square 0/1 grid in a flat row-major buffer with index formula i*n + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Stay immutable after Load so readers never need a lock.
//
// Complexity quicksheet:
//   - Load: O(n²); HasEdge: O(1); Successors: O(n); Rows/String: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxHasEdge    = "HasEdge"
	ctxSuccessors = "Successors"
)

// adjacencyErrorf wraps an error with a uniform Adjacency context and callsite indices.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}

// Adjacency is an immutable N×N directed adjacency matrix.
//   - n is the node count.
//   - edges is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// Self-edges (i,i) are kept exactly as loaded; traversals decide whether to honor them.
type Adjacency struct {
	n     int
	edges []bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Adjacency)(nil)

// Load builds an Adjacency from cleaned text rows.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, square, alphabet {'0','1'}).
//   - Stage 2: allocate n*n cells and copy '1' positions.
//
// Errors:
//   - ErrMalformedMatrix (ErrEmptyMatrix for zero rows).
//
// The rows slice is not retained.
func Load(rows []string) (*Adjacency, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	n := len(rows)
	a := &Adjacency{n: n, edges: make([]bool, n*n)}
	for i, row := range rows {
		base := i * n
		for j := 0; j < n; j++ {
			a.edges[base+j] = row[j] == edgeRune
		}
	}

	return a, nil
}

// NodeCount returns N. A nil receiver has zero nodes.
func (a *Adjacency) NodeCount() int {
	if a == nil {
		return 0
	}

	return a.n
}

// HasEdge reports whether the directed edge i→j is present.
// Errors: ErrNilMatrix, ErrIndexOutOfRange.
func (a *Adjacency) HasEdge(i, j int) (bool, error) {
	if a == nil {
		return false, adjacencyErrorf(ctxHasEdge, i, j, ErrNilMatrix)
	}
	if err := ValidateIndex(i, a.n); err != nil {
		return false, adjacencyErrorf(ctxHasEdge, i, j, err)
	}
	if err := ValidateIndex(j, a.n); err != nil {
		return false, adjacencyErrorf(ctxHasEdge, i, j, err)
	}

	return a.edges[i*a.n+j], nil
}

// Successors returns the out-neighbors of i in ascending order.
// A self-edge on i is not reported.
func (a *Adjacency) Successors(i int) ([]int, error) {
	if a == nil {
		return nil, adjacencyErrorf(ctxSuccessors, i, -1, ErrNilMatrix)
	}
	if err := ValidateIndex(i, a.n); err != nil {
		return nil, adjacencyErrorf(ctxSuccessors, i, -1, err)
	}

	out := make([]int, 0)
	row := a.edges[i*a.n : (i+1)*a.n]
	for j, ok := range row {
		if ok && j != i {
			out = append(out, j)
		}
	}

	return out, nil
}

// Rows renders the matrix back into its cleaned text form, one string per row.
// Load(a.Rows()) yields an equal matrix.
func (a *Adjacency) Rows() []string {
	if a == nil {
		return nil
	}

	rows := make([]string, a.n)
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		sb.Reset()
		sb.Grow(a.n)
		for j := 0; j < a.n; j++ {
			if a.edges[i*a.n+j] {
				sb.WriteByte(edgeRune)
			} else {
				sb.WriteByte(noEdgeRune)
			}
		}
		rows[i] = sb.String()
	}

	return rows
}

// String renders the matrix in the parenthesized source format, e.g. "(0, 1)\n(1, 0)".
func (a *Adjacency) String() string {
	if a == nil {
		return "<nil>"
	}

	var sb strings.Builder
	for i, row := range a.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('(')
		for j := 0; j < len(row); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte(row[j])
		}
		sb.WriteByte(')')
	}

	return sb.String()
}
