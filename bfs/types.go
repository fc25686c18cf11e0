// types.go - options, result types and error definitions.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrIndexOutOfRange is returned when start or end is outside [0, N).
	ErrIndexOutOfRange = errors.New("bfs: node index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrEdgeLookup is returned when Graph.HasEdge fails mid-search.
	ErrEdgeLookup = errors.New("bfs: edge lookup error")
)

// unset marks a node whose distance is not yet known.
const unset = -1

// Graph is the read-only view the search needs: N nodes indexed [0, N) and a
// directed edge predicate. *matrix.Adjacency satisfies it.
type Graph interface {
	NodeCount() int
	HasEdge(i, j int) (bool, error)
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Compute.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node first joins the frontier.
	// Receives the node and its tentative distance from start.
	OnEnqueue func(node, depth int)

	// OnDequeue is called when a node is removed from the front of the frontier,
	// after all of its out-edges were relaxed.
	OnDequeue func(node, depth int)

	// MaxPaths, if > 0, stops enumeration after that many paths.
	// A value of 0 enumerates every shortest path.
	MaxPaths int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op hooks
//   - unlimited enumeration (MaxPaths == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		MaxPaths:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxPaths caps how many paths are enumerated.
//
//	k > 0: stop after k paths
//	k == 0: no cap
//	k < 0: invalid option → ErrOptionViolation
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// Path is an ordered sequence of node indices from start to end, inclusive.
type Path []int

// String renders the path as "0 -> 2 -> 3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// Hops returns the number of edges in p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Result holds the outcome of a search:
//   - Start, End: the queried pair.
//   - Paths: every shortest path Start→End (possibly capped by MaxPaths);
//     empty when End is unreachable.
//   - Truncated: true when MaxPaths stopped enumeration early.
type Result struct {
	Start     int
	End       int
	Paths     []Path
	Truncated bool

	distance     []int
	predecessors [][]int
}

// Found reports whether at least one path exists.
func (r *Result) Found() bool {
	return r != nil && len(r.Paths) > 0
}

// Hops returns the shortest distance Start→End in edges, or -1 when unreachable.
func (r *Result) Hops() int {
	if r == nil {
		return unset
	}
	d, ok := r.Distance(r.End)
	if !ok {
		return unset
	}

	return d
}

// Distance returns the shortest known distance from Start to v.
// ok is false when v was never reached or is out of range.
func (r *Result) Distance(v int) (d int, ok bool) {
	if r == nil || v < 0 || v >= len(r.distance) || r.distance[v] == unset {
		return 0, false
	}

	return r.distance[v], true
}

// Predecessors returns a copy of v's shortest-path predecessors in the order
// they were recorded. Start and unreached nodes have none.
func (r *Result) Predecessors(v int) []int {
	if r == nil || v < 0 || v >= len(r.predecessors) {
		return nil
	}

	return append([]int(nil), r.predecessors[v]...)
}
