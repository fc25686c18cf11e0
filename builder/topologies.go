// SPDX-License-Identifier: MIT
// Package: builder
//
// topologies.go - canonical directed constructors.
//
// Node numbering is documented per constructor; arcs are emitted in a fixed order.

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodLayered      = "Layered"
	methodRandomSparse = "RandomSparse"

	minPathVertices  = 1
	minCycleVertices = 2
	minStarVertices  = 2
	minGridDim       = 1
	minLayerDim      = 1
	probMin          = 0.0
	probMax          = 1.0
)

func tooFew(method, param string, got, least int) error {
	return builderErrorf(method, fmt.Sprintf("%s=%d (must be ≥ %d)", param, got, least), ErrTooFewVertices)
}

// Path returns a Constructor for the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if n < minPathVertices {
			return nil, tooFew(methodPath, "n", n, minPathVertices)
		}
		if err := checkSize(methodPath, n); err != nil {
			return nil, err
		}
		c := newCanvas(n, cfg)
		for i := 0; i+1 < n; i++ {
			c.arc(i, i+1)
		}
		return c, nil
	}
}

// Cycle returns a Constructor for 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if n < minCycleVertices {
			return nil, tooFew(methodCycle, "n", n, minCycleVertices)
		}
		if err := checkSize(methodCycle, n); err != nil {
			return nil, err
		}
		c := newCanvas(n, cfg)
		for i := 0; i < n; i++ {
			c.arc(i, (i+1)%n)
		}
		return c, nil
	}
}

// Complete returns a Constructor with every arc i→j, i≠j.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if n < minPathVertices {
			return nil, tooFew(methodComplete, "n", n, minPathVertices)
		}
		if err := checkSize(methodComplete, n); err != nil {
			return nil, err
		}
		c := newCanvas(n, cfg)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					c.arc(i, j)
				}
			}
		}
		return c, nil
	}
}

// Star returns a Constructor with hub 0 and arcs 0→i for i in [1, n).
func Star(n int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if n < minStarVertices {
			return nil, tooFew(methodStar, "n", n, minStarVertices)
		}
		if err := checkSize(methodStar, n); err != nil {
			return nil, err
		}
		c := newCanvas(n, cfg)
		for i := 1; i < n; i++ {
			c.arc(0, i)
		}
		return c, nil
	}
}

// Grid returns a Constructor for a rows×cols lattice numbered row-major
// (node r*cols+c) with arcs pointing right and down. Corner to corner there
// are C(rows+cols-2, rows-1) shortest paths.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, builderErrorf(methodGrid,
				fmt.Sprintf("rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim), ErrTooFewVertices)
		}
		if rows > MaxVertices/cols {
			return nil, builderErrorf(methodGrid,
				fmt.Sprintf("rows=%d, cols=%d (product must be ≤ %d)", rows, cols, MaxVertices), ErrTooManyVertices)
		}
		c := newCanvas(rows*cols, cfg)
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				v := r*cols + col
				if col+1 < cols {
					c.arc(v, v+1)
				}
				if r+1 < rows {
					c.arc(v, v+cols)
				}
			}
		}
		return c, nil
	}
}

// Layered returns a Constructor with a source (node 0), `layers` layers of
// `width` nodes fully connected layer to layer, and a sink (last node).
// Source to sink there are width^layers shortest paths of layers+1 hops.
func Layered(layers, width int) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if layers < minLayerDim || width < minLayerDim {
			return nil, builderErrorf(methodLayered,
				fmt.Sprintf("layers=%d, width=%d (each must be ≥ %d)", layers, width, minLayerDim), ErrTooFewVertices)
		}
		if layers > (MaxVertices-2)/width {
			return nil, builderErrorf(methodLayered,
				fmt.Sprintf("layers=%d, width=%d (layers*width+2 must be ≤ %d)", layers, width, MaxVertices), ErrTooManyVertices)
		}
		n := layers*width + 2
		sink := n - 1
		node := func(layer, k int) int { return 1 + layer*width + k }

		c := newCanvas(n, cfg)
		for k := 0; k < width; k++ {
			c.arc(0, node(0, k))
		}
		for l := 0; l+1 < layers; l++ {
			for a := 0; a < width; a++ {
				for b := 0; b < width; b++ {
					c.arc(node(l, a), node(l+1, b))
				}
			}
		}
		for k := 0; k < width; k++ {
			c.arc(node(layers-1, k), sink)
		}
		return c, nil
	}
}

// RandomSparse returns a Constructor that includes each off-diagonal arc
// independently with probability p. Requires WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*canvas, error) {
		if n < minPathVertices {
			return nil, tooFew(methodRandomSparse, "n", n, minPathVertices)
		}
		if err := checkSize(methodRandomSparse, n); err != nil {
			return nil, err
		}
		if p < probMin || p > probMax {
			return nil, builderErrorf(methodRandomSparse, fmt.Sprintf("p=%v", p), ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, builderErrorf(methodRandomSparse, "no rng", ErrNeedRandSource)
		}
		c := newCanvas(n, cfg)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && cfg.rng.Float64() < p {
					c.arc(i, j)
				}
			}
		}
		return c, nil
	}
}
