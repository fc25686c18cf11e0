// Package parser reads the parenthesized adjacency-matrix text format
//
//	(0, 1, 1, 0)
//	(1, 0, 0, 0)
//
// into cleaned '0'/'1' rows and hands them to matrix.Load.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/allpaths/matrix"
)

// ErrRead is returned when the input cannot be read.
var ErrRead = errors.New("parser: read failed")

// stripper removes the decorations the source format allows around cells.
var stripper = strings.NewReplacer("(", "", ")", "", " ", "", "\t", "", ",", "", "\r", "")

// Clean strips parentheses, blanks and commas, then splits text into rows.
// Blank lines are dropped, so a trailing newline is harmless.
func Clean(text string) []string {
	lines := strings.Split(stripper.Replace(text), "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			rows = append(rows, line)
		}
	}

	return rows
}

// Parse reads all of r and loads the matrix it describes.
// Shape errors match matrix.ErrMalformedMatrix.
func Parse(r io.Reader) (*matrix.Adjacency, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return matrix.Load(Clean(string(data)))
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*matrix.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}
