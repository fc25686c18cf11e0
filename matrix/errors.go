// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Callers match with errors.Is; call sites wrap with context via %w.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMatrix is returned by Load when the rows do not describe an
	// N×N grid of '0'/'1' characters.
	ErrMalformedMatrix = errors.New("matrix: malformed adjacency matrix")

	// ErrEmptyMatrix is returned by Load for zero rows.
	// It wraps ErrMalformedMatrix, so errors.Is matches either.
	ErrEmptyMatrix = fmt.Errorf("%w: no rows", ErrMalformedMatrix)

	// ErrIndexOutOfRange indicates a node index outside [0, N).
	// Public accessors MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a method call on a nil *Adjacency.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
