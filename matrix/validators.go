// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for row-shape and index checks.
//  - Validators return wrapped sentinels tagged with the check that failed.
//
// Determinism & Performance:
//  - All checks are pure and allocate only on the error path.

package matrix

import "fmt"

const (
	edgeRune   = '1'
	noEdgeRune = '0'
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows ensures rows form an N×N grid over {'0','1'}.
//
// Checks run in a fixed order: empty -> per-row length -> per-row alphabet.
// The first violation wins, and its message carries the row (and column) index.
// Complexity: O(N²).
func ValidateRows(rows []string) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrEmptyMatrix)
	}
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf("ValidateRows",
				fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedMatrix, i, len(row), n))
		}
		for j := 0; j < n; j++ {
			if c := row[j]; c != edgeRune && c != noEdgeRune {
				return validatorErrorf("ValidateRows",
					fmt.Errorf("%w: row %d col %d has %q, want '0' or '1'", ErrMalformedMatrix, i, j, c))
			}
		}
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex",
			fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, n))
	}

	return nil
}
