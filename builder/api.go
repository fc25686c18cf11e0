// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry points. Constructors live in topologies.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/allpaths/matrix"
)

// Constructor produces a square canvas from the resolved builderConfig.
// Constructors validate their parameters first and never panic.
type Constructor func(cfg builderConfig) (*canvas, error)

// Rows resolves opts, runs con and renders the result as cleaned '0'/'1' rows.
func Rows(con Constructor, opts ...Option) ([]string, error) {
	if con == nil {
		return nil, ErrNilConstructor
	}
	c, err := con(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Rows: %w", err)
	}
	return c.rows(), nil
}

// Build is Rows followed by matrix.Load.
func Build(con Constructor, opts ...Option) (*matrix.Adjacency, error) {
	rows, err := Rows(con, opts...)
	if err != nil {
		return nil, err
	}
	return matrix.Load(rows)
}

// canvas is a mutable n×n grid used only while a constructor runs.
type canvas struct {
	n             int
	cells         []bool
	bidirectional bool
}

// MaxVertices bounds the node count of any constructed matrix (n*n cells).
const MaxVertices = 1 << 15

// checkSize rejects n above MaxVertices before anything is allocated.
func checkSize(method string, n int) error {
	if n > MaxVertices {
		return builderErrorf(method, fmt.Sprintf("n=%d (must be ≤ %d)", n, MaxVertices), ErrTooManyVertices)
	}
	return nil
}

func newCanvas(n int, cfg builderConfig) *canvas {
	return &canvas{n: n, cells: make([]bool, n*n), bidirectional: cfg.bidirectional}
}

// arc sets u→v (and v→u when bidirectional).
func (c *canvas) arc(u, v int) {
	c.cells[u*c.n+v] = true
	if c.bidirectional {
		c.cells[v*c.n+u] = true
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.n)
	buf := make([]byte, c.n)
	for i := 0; i < c.n; i++ {
		for j := 0; j < c.n; j++ {
			buf[j] = '0'
			if c.cells[i*c.n+j] {
				buf[j] = '1'
			}
		}
		out[i] = string(buf)
	}
	return out
}
